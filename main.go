package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"crease/internal/api"
	"crease/internal/api/factory"
	"crease/internal/config"
	"crease/internal/console"
	"crease/internal/log"
	"crease/internal/render"
	"crease/internal/theme"
	"crease/internal/tui"

	"github.com/mattn/go-isatty"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Set up global panic handler first
	defer func() {
		if r := recover(); r != nil {
			log.Error("GLOBAL PANIC recovered", "error", r, "stack", string(debug.Stack()))
			fmt.Fprintf(os.Stderr, "Application crashed. See the debug log for details.\n")
			os.Exit(1)
		}
	}()

	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	var (
		consoleMode = flag.Bool("console", false, "Replay in the console instead of the terminal UI")
		dataPath    = flag.String("data", cfg.DataPath, "Ball-by-ball CSV file")
		dbPath      = flag.String("db", cfg.DatabasePath, "sqlite match archive, preferred over -data when it holds a match")
		themeName   = flag.String("theme", cfg.Theme, "Color theme (pavilion, classic)")
		graphics    = flag.String("graphics", cfg.Graphics, "Inline images: auto, sixel, kitty, iterm or none")
		seed        = flag.Int64("seed", cfg.Seed, "Seed for shot placement and the pitch map (0 picks one)")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("crease %s (commit %s, built %s)\n", version, commit, date)
		return
	}

	// The terminal UI and the console replay both own stdout
	if err := log.SetFileOutput(cfg.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not configure debug logging to file: %v\n", err)
	}
	defer log.Close()
	log.SetLevel(cfg.LogLevel)

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGABRT)
	go func() {
		sig := <-signalChan
		log.Error("SIGNAL RECEIVED", "signal", sig.String(), "stack", string(debug.Stack()))
		fmt.Fprintf(os.Stderr, "Application received signal %s.\n", sig.String())
		os.Exit(1)
	}()

	if err := theme.SetTheme(*themeName); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v (available: %v)\n", err, theme.GetThemeManager().Available())
		os.Exit(2)
	}
	protocol, err := render.ParseProtocol(*graphics)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	// Interrupt and terminate end the replay through the context rather than os.Exit
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	replay, err := factory.Open(ctx, factory.Source{DataPath: *dataPath, DatabasePath: *dbPath})
	if err != nil {
		log.Error("failed to load match", "data", *dataPath, "db", *dbPath, "error", err)
		fmt.Fprintf(os.Stderr, "Error loading match data: %v\n", err)
		os.Exit(1)
	}
	log.Info("match loaded", "balls", replay.TotalBalls(), "version", version)

	// Without a terminal there is nothing to draw on, so fall back to the console replay
	if *consoleMode || !isatty.IsTerminal(os.Stdout.Fd()) || !isatty.IsTerminal(os.Stdin.Fd()) {
		err := console.Run(ctx, os.Stdin, os.Stdout, replay, console.DefaultOptions)
		if errors.Is(err, context.Canceled) {
			log.Info("console replay interrupted")
			fmt.Println("\nReplay stopped.")
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runTUI(ctx, replay, cfg.TickInterval, protocol, *seed); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(ctx context.Context, replay api.ReplayAPI, tick time.Duration, protocol render.Protocol, seed int64) error {
	opts := tui.Options{
		TickInterval: tick,
		Graphics:     render.ProtocolNone,
		Seed:         seed,
	}

	if protocol = render.Resolve(protocol); protocol != render.ProtocolNone {
		tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
		if err != nil {
			log.Warn("inline images disabled", "error", err)
		} else {
			defer tty.Close()
			opts.Graphics = protocol
			opts.GraphicsOut = tty
		}
	}

	app := tui.NewApplication(replay, opts)
	go func() {
		<-ctx.Done()
		app.Stop()
	}()
	if err := app.Run(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
