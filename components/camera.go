package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	Target   math.Vec2 // Where panning is heading, clamped to the level
	Zoom     float64   // Divisor applied on the last drawn frame
}

var Camera = donburi.NewComponentType[CameraData]()
