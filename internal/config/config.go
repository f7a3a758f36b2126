package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Defaults.
const (
	DefaultEscapeWaitMS   = 10
	DefaultChordTimeoutMS = 500
	DefaultUndoDepth      = 100
	DefaultClipboardBytes = 1 << 20
	DefaultLogLevel       = "warn"
)

// EnvPrefix is prepended to every override variable name.
const EnvPrefix = "TERMKIT_"

// Config is the toolkit configuration.
type Config struct {
	// EscapeWaitMS is the lone-Escape disambiguation wait in milliseconds.
	EscapeWaitMS int `toml:"escape_wait_ms"`

	// ChordTimeoutMS is the chord window in milliseconds. Zero disables
	// chord detection.
	ChordTimeoutMS int `toml:"chord_timeout_ms"`

	// UndoDepth bounds each widget's undo stack.
	UndoDepth int `toml:"undo_depth"`

	// ClipboardBytes caps the clipboard buffer.
	ClipboardBytes int `toml:"clipboard_bytes"`

	// MirrorClipboard enables the OS clipboard bridge.
	MirrorClipboard bool `toml:"mirror_clipboard"`

	// Mouse enables mouse reporting.
	Mouse bool `toml:"mouse"`

	// Profiles is the keybinding profile order, highest priority first.
	// Built-in names (vi, emacs, common-editing) and file paths mix freely.
	Profiles []string `toml:"profiles"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		EscapeWaitMS:   DefaultEscapeWaitMS,
		ChordTimeoutMS: DefaultChordTimeoutMS,
		UndoDepth:      DefaultUndoDepth,
		ClipboardBytes: DefaultClipboardBytes,
		Mouse:          true,
		Profiles:       []string{"common-editing"},
		LogLevel:       DefaultLogLevel,
	}
}

// Load reads configuration from path, falling back to defaults when the
// file does not exist, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Missing file is not an error.
	case err != nil:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// EscapeWait returns the escape wait as a duration.
func (c Config) EscapeWait() time.Duration {
	return time.Duration(c.EscapeWaitMS) * time.Millisecond
}

// ChordTimeout returns the chord window as a duration.
func (c Config) ChordTimeout() time.Duration {
	return time.Duration(c.ChordTimeoutMS) * time.Millisecond
}

// applyEnv applies TERMKIT_* environment overrides on top of file values.
func (c *Config) applyEnv() {
	envInt(&c.EscapeWaitMS, "ESCAPE_WAIT_MS")
	envInt(&c.ChordTimeoutMS, "CHORD_TIMEOUT_MS")
	envInt(&c.UndoDepth, "UNDO_DEPTH")
	envInt(&c.ClipboardBytes, "CLIPBOARD_BYTES")
	envBool(&c.MirrorClipboard, "MIRROR_CLIPBOARD")
	envBool(&c.Mouse, "MOUSE")
	envString(&c.LogLevel, "LOG_LEVEL")

	if v, ok := os.LookupEnv(EnvPrefix + "PROFILES"); ok {
		c.Profiles = c.Profiles[:0]
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				c.Profiles = append(c.Profiles, p)
			}
		}
	}
}

func (c Config) validate() error {
	if c.EscapeWaitMS < 0 {
		return fmt.Errorf("escape_wait_ms must not be negative")
	}
	if c.ChordTimeoutMS < 0 {
		return fmt.Errorf("chord_timeout_ms must not be negative")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

func envInt(dst *int, name string) {
	if v, ok := os.LookupEnv(EnvPrefix + name); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envBool(dst *bool, name string) {
	if v, ok := os.LookupEnv(EnvPrefix + name); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func envString(dst *string, name string) {
	if v, ok := os.LookupEnv(EnvPrefix + name); ok && v != "" {
		*dst = v
	}
}
