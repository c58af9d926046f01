package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/nurture/core"
	"github.com/automoto/nurture/score"
)

// LevelData is the level being played and the score earned on it so far.
type LevelData struct {
	Name  string
	Level *core.Level
	Score score.Score

	// Selected is the child type the keyboard toolbox commands address.
	Selected core.ChildType
	// Done is set once the finished level's result has been scored.
	Done bool
}

var Level = donburi.NewComponentType[LevelData]()
