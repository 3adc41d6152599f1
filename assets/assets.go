package assets

import (
	"embed"
	"fmt"
	"image/color"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// DefaultLevel is the map loaded on startup.
const DefaultLevel = "levels/gallery.tmx"

type Level struct {
	Blocks      []Block
	CameraStart math.Vec2
	Name        string
	Width       int
	Height      int
}

// Block is a solid rectangle drawn as part of the map.
type Block struct {
	X, Y, Width, Height float64
	Color               color.RGBA
	HasColor            bool // false when the map left the color unset
}

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

func (l *LevelLoader) MustLoadLevel(levelPath string) Level {
	level, err := l.LoadLevel(levelPath)
	if err != nil {
		panic(err)
	}
	return level
}

func (l *LevelLoader) LoadLevel(levelPath string) (Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		return Level{}, fmt.Errorf("assets: load %s: %w", levelPath, err)
	}

	level := Level{
		Blocks: []Block{},
		Name:   strings.TrimSuffix(filepath.Base(levelPath), filepath.Ext(levelPath)),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}
	level.CameraStart = math.Vec2{X: float64(level.Width) / 2, Y: float64(level.Height) / 2}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Blocks":
			for _, o := range og.Objects {
				b := Block{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
				}
				if hex := o.Properties.GetString("color"); hex != "" {
					c, err := parseHexColor(hex)
					if err != nil {
						return Level{}, fmt.Errorf("assets: %s: block %d: %w", levelPath, o.ID, err)
					}
					b.Color = c
					b.HasColor = true
				}
				level.Blocks = append(level.Blocks, b)
			}
		case "CameraStart":
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				level.CameraStart = math.Vec2{X: o.X, Y: o.Y}
			}
		}
	}

	return level, nil
}

// parseHexColor parses #rrggbb or #aarrggbb as written by Tiled.
func parseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	switch len(hex) {
	case 6:
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
	case 8:
		return color.RGBA{A: uint8(v >> 24), R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
	}
	return color.RGBA{}, fmt.Errorf("bad color %q: want #rrggbb or #aarrggbb", s)
}
