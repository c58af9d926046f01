package systems

import (
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nurture/components"
	"github.com/automoto/nurture/config"
	"github.com/automoto/nurture/core"
)

// GetLevel returns the level entity's data and input, or nils before the
// scene has spawned it.
func GetLevel(e *ecs.ECS) (*components.LevelData, *components.InputData) {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil, nil
	}
	return components.Level.Get(entry), components.Input.Get(entry)
}

// UpdateLevel feeds this frame's input to the simulation and advances it
// one fixed step.
func UpdateLevel(e *ecs.ECS) {
	ld, input := GetLevel(e)
	if ld == nil || ld.Level == nil || ld.Done {
		return
	}

	if GetAction(input, components.ActionCycleChild).JustPressed {
		ld.Selected = nextChild(ld.Level, ld.Selected)
	}
	if GetAction(input, components.ActionCommandLeft).JustPressed {
		CommandChild(ld, ld.Selected, core.Left)
	}
	if GetAction(input, components.ActionCommandRight).JustPressed {
		CommandChild(ld, ld.Selected, core.Right)
	}
	if GetAction(input, components.ActionNextLevel).JustPressed {
		ld.Level.RequestNextLevel()
	}

	ld.Level.Update(PlayerInput(input), 1/float64(max(config.Game.TPS, 1)))

	if ld.Level.NextLevel() {
		result := ld.Level.Result()
		ld.Score.Add(result)
		ld.Done = true
		log.Info("level finished", "level", ld.Name, "player", result.PlayerSaved,
			"children", len(result.Children), "score", ld.Score.Total())
	}
}

// CommandChild sends a toolbox walk command and counts a move when the
// child accepts it.
func CommandChild(ld *components.LevelData, t core.ChildType, dir core.WalkDirection) bool {
	if ld.Done || !ld.Level.CommandChild(t, dir) {
		return false
	}
	ld.Score.Moved(t)
	return true
}

// nextChild returns the next child type after t that the level contains.
func nextChild(l *core.Level, t core.ChildType) core.ChildType {
	for i := 1; i <= len(core.ChildTypes); i++ {
		next := core.ChildTypes[(int(t)+i)%len(core.ChildTypes)]
		if l.Child(next) != nil {
			return next
		}
	}
	return t
}

// FirstChild is the first child type present in l, used as the initial
// toolbox selection.
func FirstChild(l *core.Level) core.ChildType {
	for _, t := range core.ChildTypes {
		if l.Child(t) != nil {
			return t
		}
	}
	return core.Larry
}
