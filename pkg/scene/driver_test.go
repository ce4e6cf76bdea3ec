package scene

import (
	"math"
	"testing"
)

func TestTickAdvancesTimeByRealDelta(t *testing.T) {
	s := NewState()
	deltas := []float64{33.4, 31.9, 35.0, 12.6}
	var want float64
	for _, d := range deltas {
		s = Update(s, TickEvent{Delta: d})
		want += d
	}
	if math.Abs(s.Time-want) > 1e-12 {
		t.Errorf("Time = %v, want %v", s.Time, want)
	}
}

func TestUpdateValueSemantics(t *testing.T) {
	s0 := NewState()
	_ = Update(s0, TickEvent{Delta: 33})
	_ = Update(s0, PointerEvent{X: 100, Y: 700})
	if s0.Time != 0 || s0.Current != (Rotation{}) || s0.Target != (Rotation{}) || s0.PointerSeen {
		t.Errorf("input state mutated: %+v", s0)
	}
}

func TestSmoothingIdempotentAtRest(t *testing.T) {
	s := NewState()
	s.Current = Rotation{X: 0.4, Y: -0.2}
	s.Target = s.Current
	got := Update(s, TickEvent{Delta: 33})
	if got.Current != s.Current {
		t.Errorf("rest state moved: %+v -> %+v", s.Current, got.Current)
	}
}

func TestSmoothingMonotoneConvergence(t *testing.T) {
	s := NewState()
	s.Target = Rotation{X: 1.0, Y: -0.5}
	prevX := math.Abs(s.Target.X - s.Current.X)
	prevY := math.Abs(s.Target.Y - s.Current.Y)
	for i := range 400 {
		s = Update(s, TickEvent{Delta: 33})
		dx := math.Abs(s.Target.X - s.Current.X)
		dy := math.Abs(s.Target.Y - s.Current.Y)
		if dx >= prevX && prevX > 1e-9 {
			t.Fatalf("tick %d: |target-current| on x did not shrink: %v -> %v", i, prevX, dx)
		}
		if dy >= prevY && prevY > 1e-9 {
			t.Fatalf("tick %d: |target-current| on y did not shrink: %v -> %v", i, prevY, dy)
		}
		if s.Current.X > s.Target.X {
			t.Fatalf("tick %d: x overshot target: %v > %v", i, s.Current.X, s.Target.X)
		}
		if s.Current.Y < s.Target.Y {
			t.Fatalf("tick %d: y overshot target: %v < %v", i, s.Current.Y, s.Target.Y)
		}
		prevX, prevY = dx, dy
	}
	if prevX > 1e-6 || prevY > 1e-6 {
		t.Errorf("did not converge: remaining (%v, %v)", prevX, prevY)
	}
}

func TestPointerCenterNeutral(t *testing.T) {
	s := Update(NewState(), PointerEvent{X: 400, Y: 400})
	if s.Target != (Rotation{}) {
		t.Errorf("center pointer target = %+v, want zero", s.Target)
	}
}

func TestPointerCrossAxisMapping(t *testing.T) {
	cases := []struct {
		name string
		x, y float64
		want Rotation
	}{
		{"right of center", 600, 400, Rotation{X: 0, Y: 0.5 * MaxTilt}},
		{"top edge", 400, 0, Rotation{X: -MaxTilt, Y: 0}},
		{"bottom right corner", 800, 800, Rotation{X: MaxTilt, Y: MaxTilt}},
		{"clamped far outside", 5000, -900, Rotation{X: -MaxTilt, Y: MaxTilt}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Update(NewState(), PointerEvent{X: tc.x, Y: tc.y})
			if math.Abs(s.Target.X-tc.want.X) > 1e-12 || math.Abs(s.Target.Y-tc.want.Y) > 1e-12 {
				t.Errorf("target = %+v, want %+v", s.Target, tc.want)
			}
		})
	}
}

func TestPointerRecorded(t *testing.T) {
	s := NewState()
	s = Update(s, TickEvent{Delta: 100})
	s = Update(s, PointerEvent{X: 123, Y: 456})
	if s.PointerX != 123 || s.PointerY != 456 {
		t.Errorf("raw pointer = (%v, %v), want (123, 456)", s.PointerX, s.PointerY)
	}
	if !s.PointerSeen {
		t.Error("PointerSeen not set")
	}
	if s.LastPointer != s.Time {
		t.Errorf("LastPointer = %v, want %v", s.LastPointer, s.Time)
	}
}

func TestDriftAccumulationJitterIndependent(t *testing.T) {
	// Two runs reaching the same total time through different tick
	// subdivisions produce the same effective pose.
	a := NewState()
	for _, d := range []float64{33.4, 31.9, 35.0, 29.7, 70.0} {
		a = Update(a, TickEvent{Delta: d})
	}
	b := Update(NewState(), TickEvent{Delta: 200.0})
	ra, rb := a.EffectiveRotation(), b.EffectiveRotation()
	if math.Abs(ra.X-rb.X) > 1e-9 || math.Abs(ra.Y-rb.Y) > 1e-9 {
		t.Errorf("effective rotation depends on tick subdivision: %+v vs %+v", ra, rb)
	}
}

func TestDriftFullWhenPointerNeverSeen(t *testing.T) {
	s := Update(NewState(), TickEvent{Delta: 5000})
	r := s.EffectiveRotation()
	if r.X != driftRateX*5000 || r.Y != driftRateY*5000 {
		t.Errorf("effective = %+v, want full drift (%v, %v)", r, driftRateX*5000, driftRateY*5000)
	}
}

func TestDriftAttenuatedWhilePointerRecent(t *testing.T) {
	s := NewState()
	s = Update(s, TickEvent{Delta: 1000})
	s = Update(s, PointerEvent{X: 400, Y: 400}) // neutral target, marks activity
	s = Update(s, TickEvent{Delta: 100})

	// current stays at zero for a centered pointer, so the effective pose
	// is pure drift
	r := s.EffectiveRotation()
	wantY := driftRateY * s.Time * driftAttenuation
	if math.Abs(r.Y-wantY) > 1e-12 {
		t.Errorf("attenuated drift = %v, want %v", r.Y, wantY)
	}

	for range 200 {
		s = Update(s, TickEvent{Delta: 33})
	}
	r = s.EffectiveRotation()
	if math.Abs(r.Y-driftRateY*s.Time) > 1e-12 {
		t.Errorf("idle drift = %v, want full %v", r.Y, driftRateY*s.Time)
	}
}

func TestDriftScaleRamp(t *testing.T) {
	cases := []struct {
		name string
		s    State
		want float64
	}{
		{"never seen", State{Time: 9999}, 1},
		{"just moved", State{Time: 1000, PointerSeen: true, LastPointer: 1000}, driftAttenuation},
		{"inside hold", State{Time: 2900, PointerSeen: true, LastPointer: 1000}, driftAttenuation},
		{"mid ramp", State{Time: 3750, PointerSeen: true, LastPointer: 1000}, 0.625},
		{"fully idle", State{Time: 10000, PointerSeen: true, LastPointer: 1000}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.s.driftScale(); math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("driftScale = %v, want %v", got, tc.want)
			}
		})
	}
}
