package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such-file.toml"))
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	if cfg.EscapeWaitMS != want.EscapeWaitMS || cfg.ChordTimeoutMS != want.ChordTimeoutMS ||
		cfg.UndoDepth != want.UndoDepth || cfg.LogLevel != want.LogLevel {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termkit.toml")
	content := `
escape_wait_ms = 25
chord_timeout_ms = 750
undo_depth = 50
mirror_clipboard = true
mouse = false
profiles = ["vi", "common-editing"]
log_level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.EscapeWaitMS != 25 || cfg.ChordTimeoutMS != 750 || cfg.UndoDepth != 50 {
		t.Errorf("got %+v", cfg)
	}
	if !cfg.MirrorClipboard || cfg.Mouse {
		t.Errorf("bool fields wrong: %+v", cfg)
	}
	if len(cfg.Profiles) != 2 || cfg.Profiles[0] != "vi" {
		t.Errorf("Profiles = %v", cfg.Profiles)
	}
	if cfg.EscapeWait() != 25*time.Millisecond {
		t.Errorf("EscapeWait = %v", cfg.EscapeWait())
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termkit.toml")
	if err := os.WriteFile(path, []byte(`undo_depth = 7`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.UndoDepth != 7 {
		t.Errorf("UndoDepth = %d", cfg.UndoDepth)
	}
	if cfg.ChordTimeoutMS != DefaultChordTimeoutMS || cfg.LogLevel != DefaultLogLevel {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termkit.toml")
	if err := os.WriteFile(path, []byte(`undo_depth = `), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TERMKIT_ESCAPE_WAIT_MS", "99")
	t.Setenv("TERMKIT_MOUSE", "false")
	t.Setenv("TERMKIT_PROFILES", "emacs, vi")
	t.Setenv("TERMKIT_LOG_LEVEL", "error")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.EscapeWaitMS != 99 {
		t.Errorf("EscapeWaitMS = %d", cfg.EscapeWaitMS)
	}
	if cfg.Mouse {
		t.Error("Mouse override not applied")
	}
	if len(cfg.Profiles) != 2 || cfg.Profiles[0] != "emacs" || cfg.Profiles[1] != "vi" {
		t.Errorf("Profiles = %v", cfg.Profiles)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestEnvInvalidValueIgnored(t *testing.T) {
	t.Setenv("TERMKIT_UNDO_DEPTH", "not-a-number")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.UndoDepth != DefaultUndoDepth {
		t.Errorf("UndoDepth = %d, want default", cfg.UndoDepth)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"negative escape wait", func(c *Config) { c.EscapeWaitMS = -1 }, true},
		{"negative chord timeout", func(c *Config) { c.ChordTimeoutMS = -5 }, true},
		{"zero chord timeout ok", func(c *Config) { c.ChordTimeoutMS = 0 }, false},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, true},
	}

	for _, tt := range tests {
		cfg := Default()
		tt.mutate(&cfg)
		err := cfg.validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: err = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}
