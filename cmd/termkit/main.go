// Package main is the termkit input inspector: it puts the terminal in raw
// mode, decodes every input event, and prints what arrives together with the
// action it resolves to. Useful for debugging terminal emulators and
// keybinding profiles.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dshills/termkit/internal/app"
	"github.com/dshills/termkit/internal/config"
	"github.com/dshills/termkit/internal/input/decoder"
	"github.com/dshills/termkit/internal/input/key"
	"github.com/dshills/termkit/internal/input/keymap"
	"github.com/dshills/termkit/internal/input/mouse"
	"github.com/dshills/termkit/internal/term"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		logLevel    string
		noMouse     bool
		showVersion bool
	)
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&noMouse, "no-mouse", false, "Disable mouse reporting")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "termkit - terminal input inspector\n\n")
		fmt.Fprintf(os.Stderr, "Usage: termkit [options]\n\n")
		fmt.Fprintf(os.Stderr, "Press keys to see decoded events; q or Ctrl+C quits.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("termkit %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	log := app.NewLogger(app.LoggerConfig{Level: app.ParseLogLevel(cfg.LogLevel)})

	terminal, err := term.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := terminal.EnterRaw(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: entering raw mode: %v\n", err)
		return 1
	}
	defer terminal.Restore()

	if cfg.Mouse && !noMouse {
		terminal.EnableMouse()
		defer terminal.DisableMouse()
	}

	resize := term.NewResizeMonitor(terminal.Size)
	defer resize.Close()

	opts := []decoder.Option{
		decoder.WithEscapeWait(cfg.EscapeWait()),
		decoder.WithResize(resize),
	}
	if cfg.ChordTimeoutMS > 0 {
		opts = append(opts, decoder.WithChords(cfg.ChordTimeout()))
	}
	dec := decoder.New(term.NewPollSource(terminal.Fd()), opts...)

	resolver := buildResolver(cfg, log)

	// Raw mode maps \n to a bare line feed; use explicit \r\n.
	print := func(format string, args ...any) {
		fmt.Printf(format+"\r\n", args...)
	}

	w, h := terminal.Size()
	print("termkit inspector, %dx%d. Press q or Ctrl+C to quit.", w, h)

	loop := app.NewLoop(dec,
		app.WithResolver(resolver),
		app.WithLogger(log),
		app.WithPollTimeout(50*time.Millisecond),
		app.OnAction(func(a keymap.Action, ev key.Event) error {
			print("key    %-18s -> %s", ev, a)
			if a == "editor.quit" {
				return app.ErrQuit
			}
			return nil
		}),
		app.OnChord(func(c key.Chord) error {
			print("chord  %s", c)
			return nil
		}),
		app.OnMouse(func(m mouse.Event) error {
			print("mouse  %s", m)
			return nil
		}),
		app.OnResize(func(width, height int) error {
			print("resize %dx%d", width, height)
			return nil
		}),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// buildResolver composes the profiles named in the configuration, in order.
// Unknown names are tried as file paths; failures are logged and skipped.
// An inspector profile is appended last so q and Ctrl+C always quit.
func buildResolver(cfg config.Config, log *app.Logger) *keymap.Resolver {
	loader := keymap.NewLoader()
	r := keymap.NewResolver()
	for _, name := range cfg.Profiles {
		switch name {
		case "vi":
			r.Push(keymap.Vi())
		case "emacs":
			r.Push(keymap.Emacs())
		case "common-editing":
			r.Push(keymap.CommonEditing())
		default:
			p, err := loader.LoadFile(name)
			if err != nil {
				log.Warn("skipping profile %s: %v", name, err)
				continue
			}
			r.Push(p)
		}
	}

	quit := keymap.NewProfile("inspector")
	quit.Add("q", "editor.quit").Add("Ctrl+c", "editor.quit")
	r.Push(quit)
	return r
}
