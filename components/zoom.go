package components

import (
	"time"

	"github.com/automoto/zoomcam/zoom"
	"github.com/yohamta/donburi"
)

// ZoomData owns the zoom state machine and the input it is fed from.
type ZoomData struct {
	State      *zoom.State
	ScrollTier int       // Clamped to [0, MaxScrollTiers]
	LastTickAt time.Time // When Advance last ran, for render-time blending

	// Interpolator config in use, rebuilt when these change
	InitialSpec zoom.Spec
	ScrollSpec  zoom.Spec
}

var Zoom = donburi.NewComponentType[ZoomData]()
