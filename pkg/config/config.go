// Package config holds the settings of the cells figure tool.
//
// Values start from Default and may be overridden by a TOML file:
//
//	[server]
//	addr = ":8080"
//
//	[canvas]
//	width = 1000
//	height = 1000
//
//	[sites]
//	count = 12
//	random = true
//	seed = 42
//
//	[style]
//	palette = ["#440154", "#21918c", "#fde725"]
//	opacity = 0.2
//
// Keys the file sets but Config does not know are rejected.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	apperrors "github.com/0x0FACED/voronoi-regions/pkg/errors"
	"github.com/0x0FACED/voronoi-regions/pkg/logger"
)

// Viridis are the anchor colours of the default palette.
var Viridis = []string{"#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"}

type Config struct {
	Server Server `toml:"server"`
	Canvas Canvas `toml:"canvas"`
	Sites  Sites  `toml:"sites"`
	Style  Style  `toml:"style"`
	Log    Log    `toml:"log"`
}

type Server struct {
	Addr            string        `toml:"addr"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"`
}

// Canvas is the world-space area sites are generated in and the pixel size
// of rendered figures.
type Canvas struct {
	Width   int     `toml:"width"`
	Height  int     `toml:"height"`
	Padding float64 `toml:"padding"`
}

type Sites struct {
	Count  int   `toml:"count"`
	Random bool  `toml:"random"`
	Seed   int64 `toml:"seed"`
}

type Style struct {
	Palette    []string `toml:"palette"`
	Opacity    float64  `toml:"opacity"`
	Background string   `toml:"background"`
	SiteRadius float64  `toml:"site_radius"`
}

type Log struct {
	Level string `toml:"level"`
}

func Default() Config {
	return Config{
		Server: Server{Addr: ":8080", ShutdownTimeout: 5 * time.Second},
		Canvas: Canvas{Width: 1000, Height: 1000, Padding: 0.05},
		Sites:  Sites{Count: 12, Random: true, Seed: 1},
		Style: Style{
			Palette:    append([]string(nil), Viridis...),
			Opacity:    0.2,
			Background: "#ffffff",
			SiteRadius: 3,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads path over Default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, apperrors.New(apperrors.ErrCodeInvalidConfig, "%s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	return cfg, cfg.Validate()
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return invalid("canvas must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	case c.Canvas.Padding < 0 || c.Canvas.Padding >= 0.5:
		return invalid("canvas.padding must be in [0, 0.5), got %v", c.Canvas.Padding)
	case c.Sites.Count < 0:
		return invalid("sites.count must not be negative, got %d", c.Sites.Count)
	case c.Style.Opacity < 0 || c.Style.Opacity > 1:
		return invalid("style.opacity must be in [0, 1], got %v", c.Style.Opacity)
	case c.Style.SiteRadius < 0:
		return invalid("style.site_radius must not be negative, got %v", c.Style.SiteRadius)
	case len(c.Style.Palette) == 0:
		return invalid("style.palette is empty")
	case c.Server.ShutdownTimeout < 0:
		return invalid("server.shutdown_timeout must not be negative")
	}

	for _, hex := range append([]string{c.Style.Background}, c.Style.Palette...) {
		if _, err := colorful.Hex(hex); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "bad colour %q", hex)
		}
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "log.level %q", c.Log.Level)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return apperrors.New(apperrors.ErrCodeInvalidConfig, format, args...)
}
