package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nurture/components"
	"github.com/automoto/nurture/tags"
)

var (
	Level = newArchetype(
		tags.Level,
		components.Level,
		components.Input,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
	)
	Menu = newArchetype(
		tags.Menu,
		components.Menu,
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		components.LayerWorld,
		append(a.components, cs...)...,
	))
	return e
}
