package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	apperrors "github.com/0x0FACED/voronoi-regions/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cells.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":8080" || cfg.Sites.Count != 12 {
		t.Errorf("Load(\"\") = %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
addr = "127.0.0.1:9000"
shutdown_timeout = "2s"

[canvas]
width = 640

[sites]
count = 30
random = false

[style]
palette = ["#000000", "#ffffff"]
opacity = 0.5

[log]
level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" || cfg.Server.ShutdownTimeout != 2*time.Second {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Canvas.Width != 640 || cfg.Canvas.Height != 1000 {
		t.Errorf("canvas = %+v, height should keep its default", cfg.Canvas)
	}
	if cfg.Sites.Count != 30 || cfg.Sites.Random {
		t.Errorf("sites = %+v", cfg.Sites)
	}
	if len(cfg.Style.Palette) != 2 || cfg.Style.Opacity != 0.5 || cfg.Style.Background != "#ffffff" {
		t.Errorf("style = %+v", cfg.Style)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log = %+v", cfg.Log)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown key", "[canvas]\ndepth = 3\n", "canvas.depth"},
		{"unknown section", "[database]\nurl = \"x\"\n", "database"},
		{"syntax", "[canvas\nwidth = 1\n", "parse"},
		{"zero width", "[canvas]\nwidth = 0\n", "canvas must be positive"},
		{"opacity", "[style]\nopacity = 1.5\n", "opacity"},
		{"bad colour", "[style]\npalette = [\"#12\"]\n", "bad colour"},
		{"empty palette", "[style]\npalette = []\n", "palette is empty"},
		{"log level", "[log]\nlevel = \"loud\"\n", "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !apperrors.Is(err, apperrors.ErrCodeInvalidConfig) {
				t.Fatalf("Load() error = %v, want %s", err, apperrors.ErrCodeInvalidConfig)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !apperrors.Is(err, apperrors.ErrCodeInvalidConfig) {
		t.Errorf("Load() error = %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want it to wrap fs.ErrNotExist", err)
	}
}
