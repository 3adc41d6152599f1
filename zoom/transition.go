package zoom

import (
	"fmt"
	"sort"

	"github.com/tanema/gween/ease"
)

// Curve is a named easing curve over [0,1].
type Curve struct {
	name     string
	fn       ease.TweenFunc
	opposite string
}

type curveDef struct {
	fn       ease.TweenFunc
	opposite string
}

var curves = map[string]curveDef{
	"instant":           {ease.Linear, "instant"},
	"linear":            {ease.Linear, "linear"},
	"ease_in_sine":      {ease.InSine, "ease_out_sine"},
	"ease_out_sine":     {ease.OutSine, "ease_in_sine"},
	"ease_in_out_sine":  {ease.InOutSine, "ease_in_out_sine"},
	"ease_in_quad":      {ease.InQuad, "ease_out_quad"},
	"ease_out_quad":     {ease.OutQuad, "ease_in_quad"},
	"ease_in_out_quad":  {ease.InOutQuad, "ease_in_out_quad"},
	"ease_in_cubic":     {ease.InCubic, "ease_out_cubic"},
	"ease_out_cubic":    {ease.OutCubic, "ease_in_cubic"},
	"ease_in_out_cubic": {ease.InOutCubic, "ease_in_out_cubic"},
	"ease_in_exp":       {ease.InExpo, "ease_out_exp"},
	"ease_out_exp":      {ease.OutExpo, "ease_in_exp"},
	"ease_in_out_exp":   {ease.InOutExpo, "ease_in_out_exp"},
}

// ParseCurve returns the curve registered under name.
func ParseCurve(name string) (Curve, error) {
	def, ok := curves[name]
	if !ok {
		return Curve{}, fmt.Errorf("zoom: unknown curve %q", name)
	}
	return Curve{name: name, fn: def.fn, opposite: def.opposite}, nil
}

// CurveNames returns the registered curve names, sorted.
func CurveNames() []string {
	names := make([]string, 0, len(curves))
	for name := range curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c Curve) Name() string { return c.name }

// Opposite is the curve that, run from 1 back to 0, mirrors c.
func (c Curve) Opposite() Curve {
	o, _ := ParseCurve(c.opposite)
	return o
}

func (c Curve) instant() bool { return c.name == "instant" }

// Apply maps progress t in [0,1] through the curve.
func (c Curve) Apply(t float64) float64 {
	if c.fn == nil || t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return float64(c.fn(float32(t), 0, 1, 1))
}

// Invert returns the progress t with Apply(t) == v, for v in [0,1]. Curves
// are monotonic, so a bisection is enough.
func (c Curve) Invert(v float64) float64 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 1
	}
	lo, hi := 0.0, 1.0
	for i := 0; i < 60; i++ {
		mid := (lo + hi) / 2
		if c.Apply(mid) < v {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// Transition advances linearly in time and applies an easing curve when the
// value is read. Zooming out uses the opposite of the zoom-in curve, so an
// ease-out zoom-in leaves quickly and settles slowly on the way back too.
//
// When the direction reverses mid-way, progress is re-mapped onto the new
// curve so the eased value it reads as does not change.
type Transition struct {
	in, out     Curve
	inDuration  float64
	outDuration float64
	zoomingIn   bool

	// Set by Tick on a reversal, consumed by ModifyPrev
	reversed bool
	from, to Curve
}

// NewTransition creates a Transition taking inDuration seconds to go from 0
// to 1 and outDuration seconds to come back.
func NewTransition(in Curve, inDuration, outDuration float64) (*Transition, error) {
	if inDuration <= 0 || outDuration <= 0 {
		return nil, fmt.Errorf("zoom: transition durations must be positive, got %v/%v", inDuration, outDuration)
	}
	return &Transition{
		in:          in,
		out:         in.Opposite(),
		inDuration:  inDuration,
		outDuration: outDuration,
		zoomingIn:   true,
	}, nil
}

func (t *Transition) Tick(target, current, dt float64) float64 {
	t.reversed = false
	switch {
	case target > current:
		current = t.turn(true, current)
		if t.in.instant() {
			return target
		}
		return approach(current, target, dt/t.inDuration)
	case target < current:
		current = t.turn(false, current)
		if t.out.instant() {
			return target
		}
		return approach(current, target, dt/t.outDuration)
	}
	return current
}

// turn switches direction and returns current as progress on the new curve.
func (t *Transition) turn(zoomingIn bool, current float64) float64 {
	if zoomingIn == t.zoomingIn {
		return current
	}
	t.from, t.to = t.curve(), t.in
	if !zoomingIn {
		t.to = t.out
	}
	t.zoomingIn = zoomingIn
	t.reversed = true
	return t.remap(current)
}

func (t *Transition) curve() Curve {
	if t.zoomingIn {
		return t.in
	}
	return t.out
}

func (t *Transition) remap(v float64) float64 {
	if t.from.instant() || t.to.instant() {
		return v
	}
	return t.to.Invert(t.from.Apply(v))
}

func (t *Transition) Smooth() bool { return true }

// ModifyPrev re-maps the previous tick's progress after a reversal so that
// blending starts from the value last shown.
func (t *Transition) ModifyPrev(v float64) float64 {
	if !t.reversed {
		return v
	}
	t.reversed = false
	return t.remap(v)
}

func (t *Transition) Modify(v float64) float64 {
	return t.curve().Apply(v)
}
