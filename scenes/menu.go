package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nurture/archetypes"
	"github.com/automoto/nurture/assets"
	"github.com/automoto/nurture/components"
	"github.com/automoto/nurture/score"
	"github.com/automoto/nurture/systems"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Session is shared by every scene for the lifetime of the game.
type Session struct {
	Loader   *assets.LevelLoader
	Order    []string
	Progress *score.Progress
}

// MenuScene is the level select screen
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *Session
	selected     int
	once         sync.Once
}

// NewMenuScene creates a menu with the cursor on level index selected.
func NewMenuScene(sc SceneChanger, session *Session, selected int) *MenuScene {
	return &MenuScene{sceneChanger: sc, session: session, selected: selected}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	createLevelScene := func(index int) interface{} {
		return NewLevelScene(ms.sceneChanger, ms.session, index)
	}

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, createLevelScene))

	ms.ecs.AddRenderer(components.LayerWorld, systems.DrawMenu)

	entry := archetypes.Menu.Spawn(ms.ecs)
	menu := components.MenuData{
		SelectedIndex: min(max(ms.selected, 0), max(len(ms.session.Order)-1, 0)),
		Levels:        ms.session.Order,
	}
	systems.SetMenuProgress(&menu, ms.session.Progress)
	components.Menu.SetValue(entry, menu)
}
