package scenes

import (
	"image/color"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nurture/archetypes"
	"github.com/automoto/nurture/components"
	"github.com/automoto/nurture/config"
	"github.com/automoto/nurture/core"
	"github.com/automoto/nurture/shared/leveldata"
	"github.com/automoto/nurture/systems"
	"github.com/automoto/nurture/ui"
)

// LevelScene plays one level of the session's order.
type LevelScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *Session
	index        int
	name         string

	level    *components.LevelData
	toolbox  *ui.ToolboxUI
	watcher  *leveldata.Watcher
	recorded bool
	once     sync.Once
}

func NewLevelScene(sc SceneChanger, session *Session, index int) *LevelScene {
	return &LevelScene{
		sceneChanger: sc,
		session:      session,
		index:        index,
		name:         session.Order[index],
	}
}

func (ls *LevelScene) Update() {
	ls.once.Do(ls.configure)
	if ls.level == nil {
		ls.toMenu()
		return
	}

	ls.pollWatcher()
	ls.toolbox.Update()
	ls.ecs.Update()

	_, input := systems.GetLevel(ls.ecs)
	if ls.level.Done && !ls.recorded {
		ls.record()
	}

	switch {
	case systems.GetAction(input, components.ActionReset).JustPressed:
		ls.reset(false)
	case systems.GetAction(input, components.ActionMenuBack).JustPressed:
		ls.toMenu()
	case ls.level.Done && systems.GetAction(input, components.ActionMenuSelect).JustPressed:
		ls.advance()
	}
}

func (ls *LevelScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ls.ecs == nil || ls.level == nil {
		return
	}
	ls.ecs.Draw(screen)
	ls.toolbox.UI.Draw(screen)
}

func (ls *LevelScene) configure() {
	ls.ecs = ecs.NewECS(donburi.NewWorld())

	ls.ecs.AddSystem(systems.UpdateInput)
	ls.ecs.AddSystem(systems.UpdateLevel)
	ls.ecs.AddSystem(systems.UpdateCamera)

	ls.ecs.AddRenderer(components.LayerWorld, systems.DrawLevel)
	ls.ecs.AddRenderer(components.LayerWorld, systems.DrawDebug)
	ls.ecs.AddRenderer(components.LayerHUD, systems.DrawHUD)

	archetypes.Camera.Spawn(ls.ecs)
	entry := archetypes.Level.Spawn(ls.ecs)
	ls.level = components.Level.Get(entry)

	if !ls.reset(false) {
		ls.level = nil
		return
	}

	if config.Debug.WatchLevels && config.Levels.Dir != "" {
		w, err := leveldata.NewWatcher(config.Levels.Dir)
		if err != nil {
			log.Warn("level hot reload disabled", "err", err)
		} else {
			ls.watcher = w
		}
	}
}

// reset builds the level again from its description, re-reading the file
// when reload is set. It reports whether the level could be built.
func (ls *LevelScene) reset(reload bool) bool {
	var (
		desc *leveldata.Description
		err  error
	)
	if reload {
		desc, err = ls.session.Loader.Reload(ls.name)
	} else {
		desc, err = ls.session.Loader.Get(ls.name)
	}
	if err != nil {
		log.Error("could not load level", "level", ls.name, "err", err)
		return false
	}
	l, err := core.NewLevel(desc)
	if err != nil {
		log.Error("could not build level", "level", ls.name, "err", err)
		return false
	}

	*ls.level = components.LevelData{
		Name:     ls.name,
		Level:    l,
		Selected: systems.FirstChild(l),
	}
	ls.recorded = false
	ls.toolbox = ui.NewToolboxUI(ls.level)

	if cameraEntry, ok := components.Camera.First(ls.ecs.World); ok {
		components.Camera.Get(cameraEntry).Snapped = false
	}
	return true
}

func (ls *LevelScene) pollWatcher() {
	if ls.watcher == nil {
		return
	}
	for {
		select {
		case path := <-ls.watcher.Events:
			log.Info("level file changed", "path", path)
			if leveldata.Stem(path) == ls.name {
				ls.reset(true)
			}
		case err := <-ls.watcher.Errors:
			if err != nil {
				log.Warn("level watch error", "err", err)
			}
		default:
			return
		}
	}
}

// record stores the finished level's score in the saved progress.
func (ls *LevelScene) record() {
	ls.recorded = true

	next := ""
	if ls.index+1 < len(ls.session.Order) {
		next = ls.session.Order[ls.index+1]
	}
	if ls.session.Progress.Record(ls.name, ls.level.Score, next) {
		log.Info("new best", "level", ls.name, "score", ls.level.Score.Total())
	}
	if err := systems.SaveProgress(ls.session.Progress); err != nil {
		log.Warn("progress not saved", "err", err)
	}
}

func (ls *LevelScene) advance() {
	ls.close()
	if ls.index+1 < len(ls.session.Order) {
		ls.sceneChanger.ChangeScene(NewLevelScene(ls.sceneChanger, ls.session, ls.index+1))
		return
	}
	ls.sceneChanger.ChangeScene(NewMenuScene(ls.sceneChanger, ls.session, 0))
}

func (ls *LevelScene) toMenu() {
	ls.close()
	ls.sceneChanger.ChangeScene(NewMenuScene(ls.sceneChanger, ls.session, ls.index))
}

func (ls *LevelScene) close() {
	if ls.watcher != nil {
		_ = ls.watcher.Close()
		ls.watcher = nil
	}
}
