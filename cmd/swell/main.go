// swell - animated wave surface
// Four classic plasma-style height fields rendered as a tilting 3D lattice,
// in the terminal (half-block cells), in a desktop window, or streamed over
// WebSocket.
//
// Controls:
//
//	Mouse move  - Tilt the surface
//	Scroll      - Zoom in/out
//	1-4         - Select variant (ripples, lattice, vortex, swell)
//	Tab         - Next variant
//	W           - Toggle wireframe
//	S           - Save PNG screenshot
//	G           - Export glTF snapshot
//	H/?         - Toggle HUD overlay
//	Esc/Q       - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/taigrr/swell/internal/config"
	"github.com/taigrr/swell/internal/logger"
	"github.com/taigrr/swell/internal/stream"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "swell - animated wave surface\n\n")
		fmt.Fprintf(os.Stderr, "Usage: swell [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Mouse move  - Tilt the surface\n")
		fmt.Fprintf(os.Stderr, "  Scroll      - Zoom in/out\n")
		fmt.Fprintf(os.Stderr, "  1-4         - Select wave variant\n")
		fmt.Fprintf(os.Stderr, "  Tab         - Next variant\n")
		fmt.Fprintf(os.Stderr, "  W           - Toggle wireframe\n")
		fmt.Fprintf(os.Stderr, "  S           - Save PNG screenshot\n")
		fmt.Fprintf(os.Stderr, "  G           - Export glTF snapshot\n")
		fmt.Fprintf(os.Stderr, "  H or ?      - Toggle HUD overlay\n")
		fmt.Fprintf(os.Stderr, "  Esc or Q    - Quit\n")
	}
	config.ParseFlags()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	sink := cfg.Display.Sink

	// A fullscreen TUI owns stdout, so console logging is only safe on the
	// other sinks; the file core works everywhere.
	consoleLog := sink != "terminal"
	fileCfg := logger.FileConfig{}
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	if err := logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, consoleLog); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	a, err := newApp(cfg)
	if err != nil {
		return err
	}

	if cfg.Stream.Enabled || sink == "stream" {
		caster := stream.New(a.fps)
		a.caster = caster
		go func() {
			if err := caster.Serve(cfg.Stream.Addr); err != nil {
				logger.Error("stream server", zap.Error(err))
				cancel()
			}
		}()
		defer func() {
			shutdownCtx, stop := context.WithTimeout(context.Background(), 2*time.Second)
			defer stop()
			_ = caster.Shutdown(shutdownCtx)
		}()
	}

	logger.Info("starting",
		zap.String("sink", sink),
		zap.String("variant", a.variant.String()),
		zap.Int("fps", a.fps),
	)

	switch sink {
	case "terminal":
		return runTerminal(ctx, cancel, a)
	case "window":
		return runWindow(ctx, a)
	case "stream":
		return runHeadless(ctx, a)
	default:
		return fmt.Errorf("unknown sink %q (use terminal, window or stream)", sink)
	}
}

// runHeadless drives the animation with no local display: frames leave only
// through the broadcaster and the surface moves on drift alone.
func runHeadless(ctx context.Context, a *app) error {
	ticker := time.NewTicker(time.Second / time.Duration(a.fps))
	defer ticker.Stop()

	lastFrame := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			dt := now.Sub(lastFrame).Seconds()
			lastFrame = now
			if dt > 0.1 {
				dt = 0.1
			}
			a.tick(dt)
			a.frame()
		}
	}
}
