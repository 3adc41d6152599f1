package config

import (
	"errors"
	"fmt"

	"github.com/automoto/zoomcam/zoom"
)

// ZoomSettings reads the global Zoom config on every call, so the zoom state
// always sees the latest values.
type ZoomSettings struct{}

var _ zoom.Settings = ZoomSettings{}

func (ZoomSettings) InitialZoom() int         { return Zoom.InitialZoom }
func (ZoomSettings) ScrollIncrement() float64 { return Zoom.ScrollIncrement }
func (ZoomSettings) MaxScrollTiers() int      { return Zoom.MaxScrollTiers }
func (ZoomSettings) LinearLikeSteps() bool    { return Zoom.LinearLikeSteps }

// InitialSpec describes the Initial channel interpolator.
func (z ZoomConfig) InitialSpec() (zoom.Spec, error) {
	kind, err := zoom.ParseKind(z.InitialKind)
	if err != nil {
		return zoom.Spec{}, fmt.Errorf("initial: %w", err)
	}
	return zoom.Spec{
		Kind:        kind,
		Speed:       z.InitialSpeed,
		Velocity:    z.InitialVelocity,
		Curve:       z.InitialCurve,
		InDuration:  z.InitialInDuration,
		OutDuration: z.InitialOutDuration,
	}, nil
}

// ScrollSpec describes the Scroll channel interpolator.
func (z ZoomConfig) ScrollSpec() (zoom.Spec, error) {
	kind, err := zoom.ParseKind(z.ScrollKind)
	if err != nil {
		return zoom.Spec{}, fmt.Errorf("scroll: %w", err)
	}
	return zoom.Spec{
		Kind:        kind,
		Speed:       z.ScrollSpeed,
		Velocity:    z.ScrollVelocity,
		Curve:       z.ScrollCurve,
		InDuration:  z.ScrollInDuration,
		OutDuration: z.ScrollOutDuration,
	}, nil
}

// Interpolators builds both channel interpolators from the config.
func (z ZoomConfig) Interpolators() (initial, scroll zoom.Interpolator, err error) {
	initialSpec, err := z.InitialSpec()
	if err != nil {
		return nil, nil, err
	}
	scrollSpec, err := z.ScrollSpec()
	if err != nil {
		return nil, nil, err
	}
	if initial, err = zoom.NewInterpolator(initialSpec); err != nil {
		return nil, nil, fmt.Errorf("initial: %w", err)
	}
	if scroll, err = zoom.NewInterpolator(scrollSpec); err != nil {
		return nil, nil, fmt.Errorf("scroll: %w", err)
	}
	return initial, scroll, nil
}

// Validate checks the ranges the zoom state relies on.
func (z ZoomConfig) Validate() error {
	var errs []error
	if z.InitialZoom < 1 {
		errs = append(errs, fmt.Errorf("initial zoom must be at least 1, got %d", z.InitialZoom))
	}
	if z.ScrollIncrement < 0 {
		errs = append(errs, fmt.Errorf("scroll increment must not be negative, got %v", z.ScrollIncrement))
	}
	if z.MaxScrollTiers < 0 {
		errs = append(errs, fmt.Errorf("max scroll tiers must not be negative, got %d", z.MaxScrollTiers))
	}
	if _, _, err := z.Interpolators(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid zoom settings: %w", err)
	}
	return nil
}
