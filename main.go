package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/zoomcam/config"
	"github.com/automoto/zoomcam/fonts"
	"github.com/automoto/zoomcam/scenes"
	"github.com/automoto/zoomcam/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	fonts.LoadDefaults(config.UI.HUDFontSize)

	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	zoomFile := flag.String("zoom-file", config.Debug.ZoomFile, "YAML zoom tuning file (empty disables it)")
	watch := flag.Bool("watch", true, "Reload the zoom tuning file when it changes")
	level := flag.String("level", scenes.DefaultLevel, "Embedded Tiled map to show")
	hud := flag.Bool("hud", config.Debug.ShowHUD, "Show the zoom state overlay")
	flag.Parse()

	config.Debug.ZoomFile = *zoomFile

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("zoomcam")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	// Flags given on the command line win over saved settings
	if explicitFlags(flag.CommandLine)["hud"] {
		config.Debug.ShowHUD = *hud
	}

	// The tuning file wins over saved settings
	var watcher *config.Watcher
	if *zoomFile != "" {
		z, err := config.LoadZoomFile(*zoomFile, config.Zoom)
		if err != nil {
			log.Printf("Warning: Could not load zoom file: %v", err)
		}
		config.Zoom = z

		if *watch {
			watcher, err = config.NewWatcher(*zoomFile)
			if err != nil {
				log.Printf("Warning: Could not watch zoom file: %v", err)
			} else {
				defer watcher.Close()
			}
		}
	}

	if err := config.Zoom.Validate(); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	if err := ebiten.RunGame(NewGame(scenes.NewZoomScene(*level, watcher, *zoomFile))); err != nil {
		log.Fatal(err)
	}
}

// explicitFlags returns the names of the flags set on the command line.
func explicitFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}
