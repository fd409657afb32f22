package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clipstack.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.History.Capacity != DefaultCapacity {
		t.Errorf("Capacity = %d, want %d", cfg.History.Capacity, DefaultCapacity)
	}
	if cfg.Poll.Interval.Std() != DefaultPollInterval {
		t.Errorf("Interval = %s, want %s", cfg.Poll.Interval.Std(), DefaultPollInterval)
	}
	if cfg.History.AllowDuplicates || cfg.Yank.ExplicitMode || cfg.Poll.Enabled {
		t.Error("boolean settings should default to false")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load missing file: %v", err)
	}
	if cfg.History.Capacity != DefaultCapacity {
		t.Errorf("Capacity = %d, want default", cfg.History.Capacity)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[history]
capacity = 32
allow_duplicates = true

[yank]
explicit_mode = true

[poll]
enabled = true
interval = "2s"

[display]
preview_width = 40
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.History.Capacity != 32 {
		t.Errorf("Capacity = %d, want 32", cfg.History.Capacity)
	}
	if !cfg.History.AllowDuplicates {
		t.Error("AllowDuplicates not loaded")
	}
	if !cfg.Yank.ExplicitMode {
		t.Error("ExplicitMode not loaded")
	}
	if !cfg.Poll.Enabled {
		t.Error("Poll.Enabled not loaded")
	}
	if cfg.Poll.Interval.Std() != 2*time.Second {
		t.Errorf("Interval = %s, want 2s", cfg.Poll.Interval.Std())
	}
	if cfg.Display.PreviewWidth != 40 {
		t.Errorf("PreviewWidth = %d, want 40", cfg.Display.PreviewWidth)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[history]
capacity = 8
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.History.Capacity != 8 {
		t.Errorf("Capacity = %d, want 8", cfg.History.Capacity)
	}
	if cfg.Poll.Interval.Std() != DefaultPollInterval {
		t.Errorf("Interval = %s, want default", cfg.Poll.Interval.Std())
	}
}

func TestLoadParseError(t *testing.T) {
	path := writeConfig(t, "not [ valid toml")

	_, err := Load(path)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if perr.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", perr.Path, path)
	}
}

func TestLoadBadDuration(t *testing.T) {
	path := writeConfig(t, `
[poll]
interval = "soon"
`)

	if _, err := Load(path); err == nil {
		t.Error("expected error for unparseable duration")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.History.Capacity = -1
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidSetting) {
		t.Errorf("Validate err = %v, want ErrInvalidSetting", err)
	}

	cfg = Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate zero config: %v", err)
	}
	if cfg.History.Capacity != DefaultCapacity {
		t.Errorf("zero capacity not normalized: %d", cfg.History.Capacity)
	}
}
