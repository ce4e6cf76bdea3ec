package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/taigrr/swell/internal/config"
	"github.com/taigrr/swell/internal/stream"
	"github.com/taigrr/swell/pkg/export"
	"github.com/taigrr/swell/pkg/render"
	"github.com/taigrr/swell/pkg/scene"
	"github.com/taigrr/swell/pkg/surface"
	"github.com/taigrr/swell/pkg/wave"
)

// app owns the animation state shared by every sink. All mutation happens on
// one goroutine: the sink's event/frame loop.
type app struct {
	cfg     *config.Config
	fps     int
	state   scene.State
	cam     *scene.Camera
	variant wave.Variant
	wire    bool
	showHUD bool
	stroke  render.StrokeStyle
	bg      render.Color
	caster  *stream.Broadcaster

	// Wheel zoom animates through a critically damped spring
	zoom       float64
	zoomVel    float64
	zoomTarget float64
	zoomSpring harmonica.Spring
}

func newApp(cfg *config.Config) (*app, error) {
	variant, err := wave.ParseVariant(cfg.Scene.Variant)
	if err != nil {
		return nil, err
	}
	bg, err := parseHex(cfg.Display.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	strokeColor, err := parseHex(cfg.Scene.Stroke.Color)
	if err != nil {
		return nil, fmt.Errorf("stroke: %w", err)
	}

	fps := cfg.Display.FPS
	if fps <= 0 {
		fps = 30
	}

	return &app{
		cfg:     cfg,
		fps:     fps,
		state:   scene.NewState(),
		cam:     scene.NewCamera(),
		variant: variant,
		wire:    cfg.Display.Wireframe,
		showHUD: cfg.Display.HUD,
		stroke: render.StrokeStyle{
			Color:   strokeColor,
			Width:   cfg.Scene.Stroke.Width,
			Opacity: cfg.Scene.Stroke.Opacity,
		},
		bg:         bg,
		zoom:       1,
		zoomTarget: 1,
		zoomSpring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
	}, nil
}

// parseHex converts "#rrggbb" to an opaque render color.
func parseHex(s string) (render.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return render.Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return render.RGB(r, g, b), nil
}

// tick advances the animation by dt seconds of real elapsed time.
func (a *app) tick(dt float64) {
	a.state = scene.Update(a.state, scene.TickEvent{Delta: dt * 1000})
	a.zoom, a.zoomVel = a.zoomSpring.Update(a.zoom, a.zoomVel, a.zoomTarget)
}

// pointer feeds a position in the logical 0..800 square.
func (a *app) pointer(x, y float64) {
	a.state = scene.Update(a.state, scene.PointerEvent{X: x, Y: y})
}

// frame assembles the depth-sorted draw list and hands it to the broadcaster
// when streaming is on.
func (a *app) frame() []scene.Polygon {
	polys := scene.RenderFrame(a.state, a.variant, a.cam)
	if a.caster != nil {
		a.caster.Publish(a.variant.String(), polys)
	}
	return polys
}

// draw renders one full frame into fb.
func (a *app) draw(fb *render.Framebuffer) {
	polys := a.frame()

	vp := render.NewViewport(fb.Width, fb.Height)
	vp.Zoom = a.zoom

	fb.Clear(a.bg)
	if a.wire {
		stroke := a.stroke
		// Wireframe must stay visible even with the stroke styled away
		if stroke.Opacity <= 0 || stroke.Width <= 0 {
			stroke = render.StrokeStyle{Color: render.ColorWhite, Width: 1, Opacity: 1}
		}
		fb.DrawWireframe(vp, polys, stroke)
		return
	}
	fb.DrawPolygons(vp, polys, a.stroke)
}

func (a *app) cycleVariant() {
	a.variant = a.variant.Next()
}

func (a *app) toggleWire() {
	a.wire = !a.wire
}

func (a *app) toggleHUD() {
	a.showHUD = !a.showHUD
}

func (a *app) zoomBy(factor float64) {
	t := a.zoomTarget * factor
	if t < 0.25 {
		t = 0.25
	}
	if t > 4 {
		t = 4
	}
	a.zoomTarget = t
}

// savePNG writes the current framebuffer next to the binary and returns the
// file name.
func (a *app) savePNG(fb *render.Framebuffer) (string, error) {
	name := fmt.Sprintf("swell-%s-%s.png", a.variant, time.Now().Format("20060102-150405"))
	if err := fb.SavePNG(name); err != nil {
		return "", err
	}
	return name, nil
}

// exportGLB snapshots the current deformed mesh as a binary glTF file.
func (a *app) exportGLB() (string, error) {
	name := export.DefaultPath(a.variant, time.Now())
	faces := surface.Build(a.variant, a.state.Time)
	if err := export.WriteGLB(name, faces); err != nil {
		return "", err
	}
	return name, nil
}
