package zoom

import (
	"fmt"
	"math"
)

// Interpolator moves a channel value toward its target once per tick.
type Interpolator interface {
	// Tick advances current toward target over dt seconds. It must converge
	// monotonically and be deterministic.
	Tick(target, current, dt float64) float64
	// Smooth reports whether blending between the last two tick values at
	// render time is meaningful for this curve.
	Smooth() bool
	// ModifyPrev reshapes the previous tick value after each Tick.
	ModifyPrev(v float64) float64
	// Modify reshapes a blended value when it is read.
	Modify(v float64) float64
}

// snapEpsilon is the distance at which asymptotic curves land on their target.
const snapEpsilon = 1e-4

// identity provides the default read-time hooks.
type identity struct{}

func (identity) ModifyPrev(v float64) float64 { return v }
func (identity) Modify(v float64) float64     { return v }

// Instant jumps straight to the target.
type Instant struct{ identity }

func (Instant) Tick(target, _, _ float64) float64 { return target }
func (Instant) Smooth() bool                      { return false }

// Linear moves toward the target at a constant Speed in units per second.
type Linear struct {
	identity
	Speed float64
}

func (l Linear) Tick(target, current, dt float64) float64 {
	return approach(current, target, l.Speed*dt)
}

func (Linear) Smooth() bool { return true }

// Exponential closes a Velocity*dt fraction of the remaining distance each
// tick.
type Exponential struct {
	identity
	Velocity float64
}

func (e Exponential) Tick(target, current, dt float64) float64 {
	f := math.Min(1, math.Max(0, e.Velocity*dt))
	next := current + (target-current)*f
	if math.Abs(target-next) < snapEpsilon {
		return target
	}
	return next
}

func (Exponential) Smooth() bool { return true }

// approach moves current toward target by at most step without overshooting.
func approach(current, target, step float64) float64 {
	if target > current {
		return math.Min(current+step, target)
	}
	if target < current {
		return math.Max(current-step, target)
	}
	return current
}

// Kind names an Interpolator variant in configuration.
type Kind int

const (
	KindInstant Kind = iota
	KindLinear
	KindExponential
	KindTransition
)

var kindNames = map[Kind]string{
	KindInstant:     "instant",
	KindLinear:      "linear",
	KindExponential: "exponential",
	KindTransition:  "transition",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kinds lists every Kind in display order.
func Kinds() []Kind {
	return []Kind{KindInstant, KindLinear, KindExponential, KindTransition}
}

// ParseKind returns the Kind with the given config name.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("zoom: unknown interpolator %q", name)
}

// Spec describes an Interpolator to build. Only the fields used by Kind are
// read.
type Spec struct {
	Kind        Kind
	Speed       float64 // Linear
	Velocity    float64 // Exponential
	Curve       string  // Transition, zoom-in curve; zoom-out uses its opposite
	InDuration  float64 // Transition, seconds from 0 to 1
	OutDuration float64 // Transition, seconds from 1 to 0
}

// NewInterpolator builds the Interpolator described by spec.
func NewInterpolator(spec Spec) (Interpolator, error) {
	switch spec.Kind {
	case KindInstant:
		return Instant{}, nil
	case KindLinear:
		if spec.Speed <= 0 {
			return nil, fmt.Errorf("zoom: linear speed must be positive, got %v", spec.Speed)
		}
		return Linear{Speed: spec.Speed}, nil
	case KindExponential:
		if spec.Velocity <= 0 {
			return nil, fmt.Errorf("zoom: exponential velocity must be positive, got %v", spec.Velocity)
		}
		return Exponential{Velocity: spec.Velocity}, nil
	case KindTransition:
		curve, err := ParseCurve(spec.Curve)
		if err != nil {
			return nil, err
		}
		return NewTransition(curve, spec.InDuration, spec.OutDuration)
	}
	return nil, fmt.Errorf("zoom: unsupported interpolator %v", spec.Kind)
}
