package tags

import "github.com/yohamta/donburi"

var (
	Block    = donburi.NewTag().SetName("Block")
	Viewport = donburi.NewTag().SetName("Viewport")
)

// Resolv tags for spatial queries
const (
	ResolvBlock    = "block"
	ResolvViewport = "viewport"
)
