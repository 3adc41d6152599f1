package zoom

import (
	"math"
	"strings"
	"testing"
)

func TestLinearDoesNotOvershoot(t *testing.T) {
	l := Linear{Speed: 3}
	cases := []struct {
		name    string
		target  float64
		current float64
		want    float64
	}{
		{"up", 1, 0, 0.15},
		{"down", 0, 1, 0.85},
		{"clamp_up", 1, 0.9, 1},
		{"clamp_down", 0, 0.1, 0},
		{"at_target", 0.5, 0.5, 0.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := l.Tick(c.target, c.current, DefaultTickDuration); !approxEqual(got, c.want) {
				t.Fatalf("Tick(%v, %v) = %v, want %v", c.target, c.current, got, c.want)
			}
		})
	}
}

func TestExponentialSnapsToTarget(t *testing.T) {
	e := Exponential{Velocity: 10}
	if got := e.Tick(1, 0, DefaultTickDuration); got != 0.5 {
		t.Fatalf("first tick = %v, want 0.5", got)
	}
	if got := e.Tick(1, 1-snapEpsilon/4, DefaultTickDuration); got != 1 {
		t.Fatalf("tick near target = %v, want 1", got)
	}

	// A factor above 1 is clamped instead of overshooting.
	fast := Exponential{Velocity: 1000}
	if got := fast.Tick(0, 1, DefaultTickDuration); got != 0 {
		t.Fatalf("fast tick = %v, want 0", got)
	}
}

func TestInstant(t *testing.T) {
	var i Instant
	if got := i.Tick(0.7, 0, 1); got != 0.7 {
		t.Fatalf("Tick = %v, want 0.7", got)
	}
	if i.Smooth() {
		t.Fatalf("Instant must not be smooth")
	}
	if i.Modify(0.3) != 0.3 || i.ModifyPrev(0.3) != 0.3 {
		t.Fatalf("Instant hooks should be identity")
	}
}

func TestTransitionTiming(t *testing.T) {
	tr := mustTransition(t, "linear", 1, 0.5)

	ticks := 0
	v := 0.0
	for v < 1 && ticks < 100 {
		v = tr.Tick(1, v, DefaultTickDuration)
		ticks++
	}
	if ticks < 20 || ticks > 21 {
		t.Fatalf("zoom-in took %d ticks, want about 20", ticks)
	}

	ticks = 0
	for v > 0 && ticks < 100 {
		v = tr.Tick(0, v, DefaultTickDuration)
		ticks++
	}
	if ticks < 10 || ticks > 11 {
		t.Fatalf("zoom-out took %d ticks, want about 10", ticks)
	}
}

func TestTransitionUsesOppositeCurveOnTheWayOut(t *testing.T) {
	tr := mustTransition(t, "ease_out_cubic", 1, 1)
	in, _ := ParseCurve("ease_out_cubic")
	out, _ := ParseCurve("ease_in_cubic")

	tr.Tick(1, 0.5, DefaultTickDuration)
	if got, want := tr.Modify(0.5), in.Apply(0.5); got != want {
		t.Fatalf("zooming in Modify(0.5) = %v, want %v", got, want)
	}

	tr.Tick(0, 0.5, DefaultTickDuration)
	if got, want := tr.Modify(0.5), out.Apply(0.5); got != want {
		t.Fatalf("zooming out Modify(0.5) = %v, want %v", got, want)
	}
}

func TestTransitionInstantCurve(t *testing.T) {
	tr := mustTransition(t, "instant", 1, 1)
	if got := tr.Tick(1, 0, DefaultTickDuration); got != 1 {
		t.Fatalf("instant zoom-in = %v, want 1", got)
	}
	if got := tr.Tick(0, 1, DefaultTickDuration); got != 0 {
		t.Fatalf("instant zoom-out = %v, want 0", got)
	}
}

func TestCurves(t *testing.T) {
	for _, name := range CurveNames() {
		t.Run(name, func(t *testing.T) {
			c, err := ParseCurve(name)
			if err != nil {
				t.Fatalf("ParseCurve: %v", err)
			}
			if c.Apply(0) != 0 || c.Apply(1) != 1 {
				t.Fatalf("endpoints = %v, %v, want 0, 1", c.Apply(0), c.Apply(1))
			}
			if c.Opposite().Opposite().Name() != name {
				t.Fatalf("opposite of opposite = %q, want %q", c.Opposite().Opposite().Name(), name)
			}
		})
	}

	if _, err := ParseCurve("bouncy"); err == nil {
		t.Fatalf("expected error for unknown curve")
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", k.String(), err)
		}
		if got != k {
			t.Fatalf("ParseKind(%q) = %v, want %v", k.String(), got, k)
		}
	}

	_, err := ParseKind("spring")
	if err == nil || !strings.Contains(err.Error(), "spring") {
		t.Fatalf("ParseKind(spring) error = %v", err)
	}
}

func TestNewInterpolator(t *testing.T) {
	cases := []struct {
		name    string
		spec    Spec
		wantErr bool
		smooth  bool
	}{
		{"instant", Spec{Kind: KindInstant}, false, false},
		{"linear", Spec{Kind: KindLinear, Speed: 2}, false, true},
		{"linear_zero_speed", Spec{Kind: KindLinear}, true, false},
		{"exponential", Spec{Kind: KindExponential, Velocity: 7}, false, true},
		{"exponential_negative", Spec{Kind: KindExponential, Velocity: -1}, true, false},
		{"transition", Spec{Kind: KindTransition, Curve: "ease_in_sine", InDuration: 1, OutDuration: 0.5}, false, true},
		{"transition_bad_curve", Spec{Kind: KindTransition, Curve: "nope", InDuration: 1, OutDuration: 1}, true, false},
		{"transition_zero_duration", Spec{Kind: KindTransition, Curve: "linear", InDuration: 0, OutDuration: 1}, true, false},
		{"unknown_kind", Spec{Kind: Kind(42)}, true, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			interp, err := NewInterpolator(c.spec)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %T", interp)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewInterpolator: %v", err)
			}
			if interp.Smooth() != c.smooth {
				t.Fatalf("Smooth() = %v, want %v", interp.Smooth(), c.smooth)
			}
		})
	}
}

func TestCurveInvert(t *testing.T) {
	for _, name := range CurveNames() {
		if name == "instant" {
			continue
		}
		t.Run(name, func(t *testing.T) {
			c, _ := ParseCurve(name)
			for _, v := range []float64{0, 0.1, 0.25, 0.5, 0.9, 1} {
				if got := c.Apply(c.Invert(v)); math.Abs(got-v) > 1e-6 {
					t.Fatalf("Apply(Invert(%v)) = %v", v, got)
				}
			}
		})
	}
}

func TestTransitionReversalKeepsEasedValue(t *testing.T) {
	tr := mustTransition(t, "ease_out_exp", 1, 0.5)
	in, _ := ParseCurve("ease_out_exp")

	p := tr.Tick(1, 0.3, DefaultTickDuration)
	shown := in.Apply(p)

	tr.Tick(0, p, DefaultTickDuration)
	if got := tr.Modify(tr.ModifyPrev(p)); math.Abs(got-shown) > 1e-6 {
		t.Fatalf("eased value after reversal = %v, want %v", got, shown)
	}
	// Only the tick that reversed re-maps prev
	if got := tr.ModifyPrev(p); got != p {
		t.Fatalf("ModifyPrev = %v, want identity %v", got, p)
	}
}
