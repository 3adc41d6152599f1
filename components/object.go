package components

import (
	"image/color"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// BlockData is the fill color of a map block.
type BlockData struct {
	Color color.RGBA
}

var Block = donburi.NewComponentType[BlockData]()

var Space = donburi.NewComponentType[resolv.Space]()
