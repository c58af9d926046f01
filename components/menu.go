package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/nurture/score"
)

// MenuData stores the current state of the level select menu
type MenuData struct {
	SelectedIndex int
	Levels        []string
	Unlocked      map[string]bool
	Best          map[string]score.Score
	Total         score.Score
}

var Menu = donburi.NewComponentType[MenuData]()
