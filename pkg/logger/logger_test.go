package logger

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestAnsiToHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", "<pre>hello</pre>"},
		{"coloured level", "\033[32minfo\033[0m msg", `<pre><span style="color: green;">info</span> msg</pre>`},
		{"escapes markup", "<b>&", "<pre>&lt;b&gt;&amp;</pre>"},
		{"unclosed colour", "\033[31merror", `<pre><span style="color: red;">error</span></pre>`},
		{"unknown code ignored", "\033[35mx", "<pre>x</pre>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ansiToHTML(tt.input); got != tt.want {
				t.Errorf("ansiToHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewBuffersEntries(t *testing.T) {
	l := New(zapcore.InfoLevel)
	l.Debug("hidden")
	l.Info("visible", zap.Int("sites", 3))

	out := l.HTML()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug entry leaked at info level: %s", out)
	}
	if !strings.Contains(out, "visible") || !strings.Contains(out, "sites") {
		t.Errorf("HTML() = %s, want the info entry", out)
	}

	l.Reset()
	if got := l.HTML(); got != "<pre></pre>" {
		t.Errorf("HTML() after Reset = %q", got)
	}
}

func TestWithSharesBuffer(t *testing.T) {
	l := New(zapcore.DebugLevel)
	l.With(zap.String("request_id", "abc")).Info("child")

	if out := l.HTML(); !strings.Contains(out, "abc") {
		t.Errorf("parent buffer missing child entry: %s", out)
	}
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, zapcore.WarnLevel)
	l.Info("skipped")
	l.Warn("kept")

	if strings.Contains(buf.String(), "skipped") || !strings.Contains(buf.String(), "kept") {
		t.Errorf("writer output = %q", buf.String())
	}
	if l.HTML() != "" {
		t.Error("writer logger should not render HTML")
	}
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"debug", "info", "warn", "error"} {
		if _, err := ParseLevel(s); err != nil {
			t.Errorf("ParseLevel(%q) error: %v", s, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) should fail")
	}
}
