package main

import (
	"context"
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/taigrr/swell/internal/logger"
	"github.com/taigrr/swell/pkg/render"
	"github.com/taigrr/swell/pkg/scene"
	"github.com/taigrr/swell/pkg/wave"
)

// errQuit unwinds RunGame on a quit key; runWindow swallows it.
var errQuit = errors.New("quit")

// runWindow opens a desktop window and hands the frame loop to ebiten; the
// TPS setting doubles as the tick rate.
func runWindow(ctx context.Context, a *app) error {
	g := newWindowGame(ctx, a)
	ebiten.SetWindowTitle("swell")
	ebiten.SetWindowSize(a.cfg.Display.Width, a.cfg.Display.Height)
	ebiten.SetTPS(a.fps)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

type windowGame struct {
	ctx context.Context
	a   *app
	hud *HUD

	fb  *render.Framebuffer
	pix []byte

	last   time.Time
	lastCX int
	lastCY int
}

func newWindowGame(ctx context.Context, a *app) *windowGame {
	return &windowGame{
		ctx:    ctx,
		a:      a,
		hud:    NewHUD(a),
		fb:     render.NewFramebuffer(a.cfg.Display.Width, a.cfg.Display.Height),
		last:   time.Now(),
		lastCX: -1,
		lastCY: -1,
	}
}

func (g *windowGame) Update() error {
	select {
	case <-g.ctx.Done():
		return errQuit
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return errQuit
	}
	g.handleKeys()

	// The cursor only counts as pointer input when it moves inside the
	// window; a parked cursor must not hold the drift attenuated forever.
	cx, cy := ebiten.CursorPosition()
	if (cx != g.lastCX || cy != g.lastCY) &&
		cx >= 0 && cx < g.fb.Width && cy >= 0 && cy < g.fb.Height {
		g.lastCX, g.lastCY = cx, cy
		x := float64(cx) / float64(g.fb.Width-1) * scene.PointerSpan
		y := float64(cy) / float64(g.fb.Height-1) * scene.PointerSpan
		g.a.pointer(x, y)
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		if wy > 0 {
			g.a.zoomBy(1.1)
		} else {
			g.a.zoomBy(1 / 1.1)
		}
	}

	now := time.Now()
	dt := now.Sub(g.last).Seconds()
	g.last = now
	if dt > 0.1 {
		dt = 0.1
	}
	g.a.tick(dt)

	return nil
}

func (g *windowGame) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit1):
		g.a.variant = wave.Ripples
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit2):
		g.a.variant = wave.Lattice
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit3):
		g.a.variant = wave.Vortex
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit4):
		g.a.variant = wave.Swell
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.a.cycleVariant()
	case inpututil.IsKeyJustPressed(ebiten.KeyW):
		g.a.toggleWire()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		if name, err := g.a.savePNG(g.fb); err != nil {
			logger.Error("screenshot", zap.Error(err))
		} else {
			g.hud.Notify("saved " + name)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		if name, err := g.a.exportGLB(); err != nil {
			logger.Error("export", zap.Error(err))
		} else {
			g.hud.Notify("exported " + name)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyH), inpututil.IsKeyJustPressed(ebiten.KeySlash):
		g.a.toggleHUD()
	}
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	g.a.draw(g.fb)
	g.pix = g.fb.RGBABytes(g.pix)
	screen.WritePixels(g.pix)

	g.hud.UpdateFPS()
	if g.a.showHUD {
		ebitenutil.DebugPrintAt(screen, g.hud.Line(), 4, 4)
	}
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.Width, g.fb.Height
}
