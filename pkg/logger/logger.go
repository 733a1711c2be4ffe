package logger

import (
	"bytes"
	"html"
	"io"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger wraps a zap.Logger. Loggers built with New keep every entry in
// memory so the viewer page can show them next to the diagram; loggers built
// with NewWriter stream to a writer (stderr for the CLI).
type ZapLogger struct {
	log    *zap.Logger
	logBuf *bytes.Buffer
}

// New returns a logger that records entries at or above level into an
// in-memory buffer. Use HTML to read them back.
func New(level zapcore.Level) *ZapLogger {
	logBuf := &bytes.Buffer{}
	return &ZapLogger{
		log:    build(zapcore.AddSync(logBuf), level),
		logBuf: logBuf,
	}
}

// NewWriter returns a logger that writes entries at or above level to w.
func NewWriter(w io.Writer, level zapcore.Level) *ZapLogger {
	return &ZapLogger{log: build(zapcore.AddSync(w), level)}
}

// Nop returns a logger that discards everything.
func Nop() *ZapLogger {
	return &ZapLogger{log: zap.NewNop()}
}

// ParseLevel converts "debug", "info", "warn" or "error" to a zap level.
func ParseLevel(s string) (zapcore.Level, error) {
	var level zapcore.Level
	err := level.UnmarshalText([]byte(s))
	return level, err
}

func build(ws zapcore.WriteSyncer, level zapcore.Level) *zap.Logger {
	config := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    colorLevelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(config), ws, level)

	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("[2006-01-02 | 15:04:05]"))
}

func colorLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var colorCode string
	switch level {
	case zapcore.DebugLevel:
		colorCode = "\033[36m" // Cyan
	case zapcore.InfoLevel:
		colorCode = "\033[32m" // Green
	case zapcore.WarnLevel:
		colorCode = "\033[33m" // Yellow
	case zapcore.ErrorLevel:
		colorCode = "\033[31m" // Red
	default:
		colorCode = "\033[0m" // Default
	}
	enc.AppendString(colorCode + level.String() + "\033[0m")
}

var ansiCode = regexp.MustCompile(`\033\[(\d+)m`)

// Converts ANSI color codes to HTML span with inline styles.
// Text between the codes is HTML-escaped.
func ansiToHTML(input string) string {
	var result strings.Builder
	var lastIndex int
	open := false

	result.WriteString("<pre>")

	for _, match := range ansiCode.FindAllStringSubmatchIndex(input, -1) {
		start, end := match[0], match[1]

		if start > lastIndex {
			result.WriteString(html.EscapeString(input[lastIndex:start]))
		}

		colorCode := input[match[2]:match[3]]
		if color, ok := colorMap[colorCode]; ok {
			if open {
				result.WriteString("</span>")
			}
			result.WriteString(`<span style="color: ` + color + `;">`)
			open = true
		} else if colorCode == "0" && open {
			result.WriteString("</span>")
			open = false
		}

		lastIndex = end
	}

	if lastIndex < len(input) {
		result.WriteString(html.EscapeString(input[lastIndex:]))
	}
	if open {
		result.WriteString("</span>")
	}

	result.WriteString("</pre>")

	return result.String()
}

// Color mapping for ANSI codes
var colorMap = map[string]string{
	"31": "red",    // Red
	"32": "green",  // Green
	"33": "yellow", // Yellow
	"34": "blue",   // Blue
	"36": "cyan",   // Cyan
}

// HTML renders the buffered entries as a <pre> block with coloured levels.
// Loggers without a buffer return an empty string.
func (z *ZapLogger) HTML() string {
	if z.logBuf == nil {
		return ""
	}
	return ansiToHTML(z.logBuf.String())
}

// Reset drops the buffered entries.
func (z *ZapLogger) Reset() {
	if z.logBuf != nil {
		z.logBuf.Reset()
	}
}

// With returns a child logger that adds fields to every entry and shares
// the parent's sink.
func (z *ZapLogger) With(fields ...zap.Field) *ZapLogger {
	return &ZapLogger{log: z.log.With(fields...), logBuf: z.logBuf}
}

// Sync flushes buffered entries of the underlying core.
func (z *ZapLogger) Sync() error {
	return z.log.Sync()
}

func (z *ZapLogger) Info(wrappedMsg string, fields ...zap.Field) {
	z.log.Info(wrappedMsg, fields...)
}

func (z *ZapLogger) Debug(wrappedMsg string, fields ...zap.Field) {
	z.log.Debug(wrappedMsg, fields...)
}

func (z *ZapLogger) Warn(wrappedMsg string, fields ...zap.Field) {
	z.log.Warn(wrappedMsg, fields...)
}

func (z *ZapLogger) Error(wrappedMsg string, fields ...zap.Field) {
	z.log.Error(wrappedMsg, fields...)
}
