package core

import (
	"github.com/automoto/nurture/config"
	"github.com/automoto/nurture/shared/gamemath"
)

// Goal is where persons are brought to be saved. Touching it has no
// effect; the level reads its registry to see who is inside.
type Goal struct {
	interactable
	occupancy int
}

func NewGoal(mask gamemath.Rect, color string) *Goal {
	return &Goal{
		interactable: newInteractable(NewID(), mask, color, config.Animation.GoalIdle),
	}
}

func (g *Goal) Trigger(Person) {}

// Occupancy is the visual state: the number of latched persons, capped
// at config.Goal.MaxOccupancy.
func (g *Goal) Occupancy() int { return g.occupancy }

func (g *Goal) Update() {
	g.occupancy = min(g.registry.Len(), config.Goal.MaxOccupancy)
	g.anim.Update()
}
