package main

import (
	"context"
	"fmt"
	"os"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"go.uber.org/zap"

	"github.com/taigrr/swell/internal/logger"
	"github.com/taigrr/swell/pkg/render"
	"github.com/taigrr/swell/pkg/scene"
	"github.com/taigrr/swell/pkg/wave"
)

// runTerminal owns the ultraviolet screen: fullscreen alt buffer, half-block
// framebuffer, mouse tilt input and the ANSI HUD overlay. Events drain on
// the frame loop goroutine, which is the only writer of animation state.
func runTerminal(ctx context.Context, cancel context.CancelFunc, a *app) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Enable mouse mode
	fmt.Fprint(os.Stdout, "\x1b[?1003h") // Any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // SGR extended coordinates

	termRenderer := render.NewTerminalRenderer(term, width, height)
	fbWidth, fbHeight := termRenderer.FramebufferSize()
	fb := render.NewFramebuffer(fbWidth, fbHeight)

	hud := NewHUD(a)

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	targetDuration := time.Second / time.Duration(a.fps)
	lastFrame := time.Now()

	for {
		// Drain pending input before the tick
	drain:
		for {
			select {
			case ev, ok := <-term.Events():
				if !ok {
					break drain
				}
				switch ev := ev.(type) {
				case uv.WindowSizeEvent:
					width, height = ev.Width, ev.Height
					term.Erase()
					term.Resize(width, height)
					termRenderer = render.NewTerminalRenderer(term, width, height)
					fbWidth, fbHeight = termRenderer.FramebufferSize()
					fb = render.NewFramebuffer(fbWidth, fbHeight)

				case uv.KeyPressEvent:
					switch {
					case ev.MatchString("escape"), ev.MatchString("ctrl+c"), ev.MatchString("q"):
						cancel()
					case ev.MatchString("1"):
						a.variant = wave.Ripples
					case ev.MatchString("2"):
						a.variant = wave.Lattice
					case ev.MatchString("3"):
						a.variant = wave.Vortex
					case ev.MatchString("4"):
						a.variant = wave.Swell
					case ev.MatchString("tab"):
						a.cycleVariant()
					case ev.MatchString("w"):
						a.toggleWire()
					case ev.MatchString("s"):
						if name, err := a.savePNG(fb); err != nil {
							logger.Error("screenshot", zap.Error(err))
						} else {
							hud.Notify("saved " + name)
						}
					case ev.MatchString("g"):
						if name, err := a.exportGLB(); err != nil {
							logger.Error("export", zap.Error(err))
						} else {
							hud.Notify("exported " + name)
						}
					case ev.MatchString("h"), ev.MatchString("?"), ev.MatchString("shift+/"):
						a.toggleHUD()
					}

				case uv.MouseMotionEvent:
					x, y := cellToPointer(ev.X, ev.Y, width, height)
					a.pointer(x, y)

				case uv.MouseWheelEvent:
					switch ev.Button {
					case uv.MouseWheelUp:
						a.zoomBy(1.1)
					case uv.MouseWheelDown:
						a.zoomBy(1 / 1.1)
					}
				}
			default:
				break drain
			}
		}

		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now
		if dt > 0.1 {
			dt = 0.1
		}

		a.tick(dt)
		a.draw(fb)

		termRenderer.Render(fb)
		if err := termRenderer.Flush(); err != nil {
			cleanup()
			return fmt.Errorf("flush: %w", err)
		}

		// HUD overlay (always update FPS, render clears lines when HUD off)
		hud.UpdateFPS()
		hud.Render(width, height)

		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

// cellToPointer maps a terminal cell to the logical pointer square. The full
// terminal always spans the whole square, whatever its cell size.
func cellToPointer(cx, cy, width, height int) (float64, float64) {
	if width <= 1 || height <= 1 {
		return scene.PointerSpan / 2, scene.PointerSpan / 2
	}
	x := float64(cx) / float64(width-1) * scene.PointerSpan
	y := float64(cy) / float64(height-1) * scene.PointerSpan
	return x, y
}
