package main

import (
	"fmt"
	"time"

	"github.com/taigrr/swell/pkg/surface"
)

// HUD tracks the measured frame rate and draws the status overlay. The
// terminal sink paints it with raw ANSI over the flushed frame; the window
// sink prints Line() with ebiten's debug font instead.
type HUD struct {
	a         *app
	fps       float64
	fpsFrames int
	fpsTime   time.Time
	note      string
	noteUntil time.Time
}

// NewHUD creates a HUD bound to the app state it reports on.
func NewHUD(a *app) *HUD {
	return &HUD{a: a, fpsTime: time.Now()}
}

// UpdateFPS updates the FPS counter (call once per frame).
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// Notify shows a transient message in the overlay for a few seconds.
func (h *HUD) Notify(msg string) {
	h.note = msg
	h.noteUntil = time.Now().Add(4 * time.Second)
}

// Line returns the one-line status summary used by the window sink.
func (h *HUD) Line() string {
	line := fmt.Sprintf("%.0f FPS  %s  %d faces", h.fps, h.a.variant, surface.FaceCount(h.a.variant))
	if h.a.wire {
		line += "  [wire]"
	}
	if time.Now().Before(h.noteUntil) {
		line += "  " + h.note
	}
	return line
}

// Render draws the HUD overlay directly to the terminal.
func (h *HUD) Render(width, height int) {
	// ANSI escape codes for positioning and styling
	const (
		reset     = "\x1b[0m"
		bold      = "\x1b[1m"
		dim       = "\x1b[2m"
		bgBlack   = "\x1b[40m"
		fgWhite   = "\x1b[97m"
		fgGreen   = "\x1b[92m"
		fgYellow  = "\x1b[93m"
		fgCyan    = "\x1b[96m"
		clearLine = "\x1b[2K"
	)

	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	// Always clear the HUD rows (so toggling off works)
	fmt.Print(moveTo(1, 1) + clearLine)
	fmt.Print(moveTo(height, 1) + clearLine)

	if !h.a.showHUD {
		return
	}

	// Top left: FPS
	fmt.Printf("%s%s%s %.0f FPS %s", moveTo(1, 1), bgBlack, fgGreen, h.fps, reset)

	// Top middle: variant name
	name := h.a.variant.String()
	titleCol := max((width-len(name)-2)/2, 1)
	fmt.Printf("%s%s%s%s %s %s", moveTo(1, titleCol), bold, bgBlack, fgWhite, name, reset)

	// Top right: face count
	polyStr := fmt.Sprintf("%s%s%s %d faces %s", bgBlack, fgCyan, bold, surface.FaceCount(h.a.variant), reset)
	fmt.Print(moveTo(1, max(width-14, 1)) + polyStr)

	// Bottom left: mode checkbox and key hints
	checkWire := "[ ]"
	if h.a.wire {
		checkWire = "[✓]"
	}
	modeStr := fmt.Sprintf("%s%s %s W wireframe  1-4 variant  S png  G gltf %s",
		bgBlack, fgWhite, checkWire, reset)
	fmt.Print(moveTo(height, 1) + modeStr)

	// Bottom right: transient note, or the quit hint
	hint := "esc quit"
	style := dim + fgYellow
	if time.Now().Before(h.noteUntil) {
		hint = h.note
		style = fgYellow
	}
	hintCol := max(width-len(hint)-3, 1)
	fmt.Printf("%s%s%s %s %s", moveTo(height, hintCol), bgBlack, style, hint, reset)
}
