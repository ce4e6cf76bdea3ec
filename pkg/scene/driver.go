package scene

import "math"

// Animation timing and input mapping constants.
const (
	// TickInterval is the nominal ms between ticks (~30 fps). Ticks carry
	// the real elapsed delta; this is only the scheduling target.
	TickInterval = 33.0

	// Smoothing is the per-tick exponential factor pulling the current
	// rotation toward the target.
	Smoothing = 0.05

	// MaxTilt bounds the pointer-driven rotation target per axis, in
	// radians.
	MaxTilt = 1.0

	// PointerSpan is the logical pointer square; coordinates arrive in
	// 0..PointerSpan on both axes with the surface centered at half span.
	PointerSpan = 800.0

	driftRateX = 0.00004 // rad per ms superimposed on the X rotation
	driftRateY = 0.00012 // rad per ms superimposed on the Y rotation

	// Pointer activity attenuates drift; once the hold expires the factor
	// ramps back to full over driftFade ms so the pose never jumps.
	driftAttenuation = 0.25
	pointerHold      = 2000.0
	driftFade        = 1500.0
)

// Event is one external input to the animation state machine.
type Event interface {
	isEvent()
}

// TickEvent advances animation time by the real elapsed delta, in ms.
type TickEvent struct {
	Delta float64
}

// PointerEvent carries a raw pointer position in the logical pointer square.
type PointerEvent struct {
	X, Y float64
}

func (TickEvent) isEvent()    {}
func (PointerEvent) isEvent() {}

// State is the whole animation state. Update never mutates its input; the
// shell owns the single live value and replaces it on every event.
type State struct {
	Time        float64 // ms since start
	PointerX    float64
	PointerY    float64
	PointerSeen bool
	LastPointer float64 // Time at the most recent pointer event
	Target      Rotation
	Current     Rotation
}

// NewState returns the startup state: zero time, zero rotation.
func NewState() State {
	return State{}
}

// Update applies one event and returns the successor state. Ticks advance
// time and pull the current rotation toward the target by the smoothing
// factor; pointer moves retarget the rotation with the axes cross-mapped,
// pointer y driving the X rotation and pointer x the Y rotation.
func Update(s State, ev Event) State {
	switch e := ev.(type) {
	case TickEvent:
		s.Time += e.Delta
		s.Current.X += (s.Target.X - s.Current.X) * Smoothing
		s.Current.Y += (s.Target.Y - s.Current.Y) * Smoothing
	case PointerEvent:
		s.PointerX = e.X
		s.PointerY = e.Y
		s.PointerSeen = true
		s.LastPointer = s.Time
		s.Target = Rotation{X: tilt(e.Y), Y: tilt(e.X)}
	}
	return s
}

// tilt maps one pointer coordinate to a clamped rotation target about the
// opposite axis.
func tilt(coord float64) float64 {
	t := (coord - PointerSpan/2) / (PointerSpan / 2) * MaxTilt
	return math.Max(-MaxTilt, math.Min(MaxTilt, t))
}

// EffectiveRotation is the pose used for projection: the smoothed current
// rotation plus the unconditional time-proportional drift. The drift term is
// never stored back into the state.
func (s State) EffectiveRotation() Rotation {
	f := s.driftScale()
	return Rotation{
		X: s.Current.X + driftRateX*s.Time*f,
		Y: s.Current.Y + driftRateY*s.Time*f,
	}
}

// driftScale attenuates drift while pointer input is recent, then ramps the
// factor back to one as the pointer goes idle.
func (s State) driftScale() float64 {
	if !s.PointerSeen {
		return 1
	}
	idle := s.Time - s.LastPointer
	if idle < pointerHold {
		return driftAttenuation
	}
	t := (idle - pointerHold) / driftFade
	if t >= 1 {
		return 1
	}
	return driftAttenuation + (1-driftAttenuation)*t
}
