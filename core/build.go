package core

import (
	"fmt"
	"math"

	"github.com/automoto/nurture/shared/gamemath"
	"github.com/automoto/nurture/shared/leveldata"
	"github.com/charmbracelet/log"
)

// NewLevel builds a fresh simulation from a parsed description. Resetting
// a level is done by calling it again with the same description.
//
// Instances with unknown type tags are skipped. Missing or malformed
// fields on known types fail the whole level with a *LoadError.
func NewLevel(desc *leveldata.Description) (*Level, error) {
	l := &Level{Name: desc.Name}
	b := builder{level: l, bounds: newBounds()}

	for i := range desc.Instances {
		if err := b.add(i, &desc.Instances[i]); err != nil {
			return nil, err
		}
	}

	if l.player == nil {
		return nil, fmt.Errorf("core: level %q: %w", desc.Name, ErrNoPlayer)
	}

	if desc.Size != nil {
		l.Size = gamemath.Size{W: desc.Size.W, H: desc.Size.H}
		b.bounds.include(gamemath.NewRect(gamemath.Vec{}, l.Size, gamemath.TopLeft))
	} else {
		l.Size = gamemath.Size{W: b.bounds.maxX - min(b.bounds.minX, 0), H: b.bounds.maxY - min(b.bounds.minY, 0)}
	}

	l.space = NewSpace(b.bounds.minX, b.bounds.minY, b.bounds.maxX, b.bounds.maxY)
	for _, w := range l.walls {
		l.space.add(w.Rect(), w, tagWall)
	}
	for _, d := range l.doors {
		l.space.add(d.Rect(), d, tagDoor)
	}
	for _, o := range l.oneWays {
		l.space.add(o.Rect(), o, tagOneWay)
	}

	log.Info("level built",
		"name", l.Name,
		"children", len(l.children),
		"walls", len(l.walls),
		"switches", len(l.switches),
		"doors", len(l.doors),
		"jump_pads", len(l.jumpPads),
		"goal", l.goal != nil,
	)
	return l, nil
}

type bounds struct {
	minX, minY, maxX, maxY float64
}

func newBounds() bounds {
	return bounds{minX: math.Inf(1), minY: math.Inf(1), maxX: math.Inf(-1), maxY: math.Inf(-1)}
}

func (b *bounds) include(r gamemath.Rect) {
	b.minX = math.Min(b.minX, r.Left())
	b.minY = math.Min(b.minY, r.Top())
	b.maxX = math.Max(b.maxX, r.Right())
	b.maxY = math.Max(b.maxY, r.Bottom())
}

type builder struct {
	level  *Level
	bounds bounds
}

func (b *builder) fail(i int, in *leveldata.Instance, field string, err error) error {
	return &LoadError{Level: b.level.Name, Index: i, Type: in.Type, Field: field, Err: err}
}

func (b *builder) add(i int, in *leveldata.Instance) error {
	switch in.Type {
	case leveldata.TypePlayer, leveldata.TypeChild, leveldata.TypeLarryChild,
		leveldata.TypeThingChild, leveldata.TypeBloatChild, leveldata.TypeWall,
		leveldata.TypeJumpPad, leveldata.TypeSwitch, leveldata.TypeDoor,
		leveldata.TypeOneWay, leveldata.TypeSolidifier, leveldata.TypeGoal:
	default:
		log.Debug("ignoring instance", "level", b.level.Name, "index", i, "type", in.Type)
		return nil
	}

	mask, err := b.mask(i, in)
	if err != nil {
		return err
	}
	b.bounds.include(mask)

	l := b.level
	switch in.Type {
	case leveldata.TypePlayer:
		if l.player != nil {
			log.Warn("duplicate player, using the last one", "level", l.Name, "index", i)
		}
		l.player = NewPlayer(mask)

	case leveldata.TypeChild, leveldata.TypeLarryChild:
		l.children = append(l.children, NewChild(Larry, mask))
	case leveldata.TypeThingChild:
		l.children = append(l.children, NewChild(Thing, mask))
	case leveldata.TypeBloatChild:
		l.children = append(l.children, NewChild(Bloat, mask))

	case leveldata.TypeWall:
		l.walls = append(l.walls, &Wall{Mask: mask})

	case leveldata.TypeJumpPad:
		id, err := b.id(i, in)
		if err != nil {
			return err
		}
		state, err := b.state(i, in)
		if err != nil {
			return err
		}
		ps, err := ParseJumpPadState(state)
		if err != nil {
			return b.fail(i, in, "state", err)
		}
		strength := 0.0
		if in.Additional.Strength != nil {
			strength = *in.Additional.Strength
		}
		l.jumpPads = append(l.jumpPads, NewJumpPad(id, mask, color(in), ps, strength))

	case leveldata.TypeSwitch:
		id, err := b.id(i, in)
		if err != nil {
			return err
		}
		if in.Additional.Triggers == nil {
			return b.fail(i, in, "triggers", ErrMissingField)
		}
		ss := SwitchOff
		if in.Additional.State != nil {
			if ss, err = ParseSwitchState(*in.Additional.State); err != nil {
				return b.fail(i, in, "state", err)
			}
		}
		targets := make([]ID, 0, len(in.Additional.Triggers))
		for _, t := range in.Additional.Triggers {
			targets = append(targets, ID(t))
		}
		l.switches = append(l.switches, NewSwitch(id, mask, color(in), ss, targets))

	case leveldata.TypeDoor:
		id, err := b.id(i, in)
		if err != nil {
			return err
		}
		state, err := b.state(i, in)
		if err != nil {
			return err
		}
		ds, err := ParseDoorState(state)
		if err != nil {
			return b.fail(i, in, "state", err)
		}
		l.doors = append(l.doors, NewDoor(id, mask, color(in), ds))

	case leveldata.TypeOneWay:
		l.oneWays = append(l.oneWays, NewOneWay(mask, color(in)))
	case leveldata.TypeSolidifier:
		l.solidifiers = append(l.solidifiers, NewSolidifier(mask, color(in)))

	case leveldata.TypeGoal:
		if l.goal != nil {
			log.Warn("duplicate goal, using the last one", "level", l.Name, "index", i)
		}
		l.goal = NewGoal(mask, color(in))
	}
	return nil
}

func (b *builder) mask(i int, in *leveldata.Instance) (gamemath.Rect, error) {
	if in.Position == nil {
		return gamemath.Rect{}, b.fail(i, in, "position", ErrMissingField)
	}
	if in.Size == nil {
		return gamemath.Rect{}, b.fail(i, in, "size", ErrMissingField)
	}
	return gamemath.NewRect(
		gamemath.Vec{X: in.Position.X, Y: in.Position.Y},
		gamemath.Size{W: in.Size.W, H: in.Size.H},
		gamemath.TopLeft,
	), nil
}

func (b *builder) id(i int, in *leveldata.Instance) (ID, error) {
	if in.Additional == nil || in.Additional.ID == nil {
		return 0, b.fail(i, in, "id", ErrMissingField)
	}
	return ID(*in.Additional.ID), nil
}

func (b *builder) state(i int, in *leveldata.Instance) (string, error) {
	if in.Additional == nil || in.Additional.State == nil {
		return "", b.fail(i, in, "state", ErrMissingField)
	}
	return *in.Additional.State, nil
}

func color(in *leveldata.Instance) string {
	if in.Additional == nil || in.Additional.Color == nil {
		return ""
	}
	return *in.Additional.Color
}
