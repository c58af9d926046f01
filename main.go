package main

import (
	"image"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/nurture/assets"
	"github.com/automoto/nurture/config"
	"github.com/automoto/nurture/fonts"
	"github.com/automoto/nurture/scenes"
	"github.com/automoto/nurture/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(session *scenes.Session) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewMenuScene(g, session, 0)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.Game.Width, config.Game.Height)
	return config.Game.Width, config.Game.Height
}

func main() {
	path, err := config.Load(os.Getenv("NURTURE_CONFIG"))
	if err != nil {
		log.Fatal("could not load config", "err", err)
	}

	level, err := log.ParseLevel(config.Debug.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "nurture",
		Level:           level,
	}))
	if path != "" {
		log.Debug("config loaded", "path", path)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal("could not load fonts", "err", err)
	}

	// Progress still works for this run when the save directory is unavailable
	if err := systems.InitPersistence(); err != nil {
		log.Warn("could not initialize persistence", "err", err)
	}

	loader := assets.NewLevelLoader(config.Levels.Dir)
	if _, err := loader.LoadAll(); err != nil {
		log.Fatal("could not load levels", "err", err)
	}
	session := &scenes.Session{
		Loader:   loader,
		Order:    loader.Order(config.Levels.Order),
		Progress: systems.LoadProgress(),
	}
	if len(session.Order) == 0 {
		log.Fatal("no playable levels")
	}

	ebiten.SetWindowTitle(config.Game.Title)
	ebiten.SetWindowSize(config.Game.Width, config.Game.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.Game.TPS)

	if err := ebiten.RunGame(NewGame(session)); err != nil {
		log.Fatal(err)
	}
}
