package core

import (
	"math"

	"github.com/automoto/nurture/config"
	"github.com/automoto/nurture/shared/gamemath"
	"github.com/solarlune/resolv"
)

// Broadphase tags.
const (
	tagWall   = "wall"
	tagDoor   = "door"
	tagOneWay = "oneway"
	tagProbe  = "probe"
)

// Space indexes the static geometry of a level in a resolv grid so that
// validity checks only look at nearby walls, doors and platforms. Persons
// are few and are not indexed.
//
// resolv cells start at 0,0, while levels may place geometry at negative
// coordinates, so world positions are shifted by origin.
type Space struct {
	space  *resolv.Space
	origin gamemath.Vec
	probe  *resolv.Object
}

// NewSpace creates a grid covering bounds plus config.World.Margin on
// every side.
func NewSpace(minX, minY, maxX, maxY float64) *Space {
	margin := config.World.Margin
	cell := max(config.World.CellSize, 1)
	w := int(math.Ceil(maxX-minX+2*margin)) + cell
	h := int(math.Ceil(maxY-minY+2*margin)) + cell

	s := &Space{
		space:  resolv.NewSpace(w, h, cell, cell),
		origin: gamemath.Vec{X: margin - minX, Y: margin - minY},
		probe:  resolv.NewObject(0, 0, 1, 1, tagProbe),
	}
	s.space.Add(s.probe)
	return s
}

func (s *Space) add(r gamemath.Rect, data any, tag string) {
	tl := r.TopLeft().Add(s.origin)
	size := r.Size()
	obj := resolv.NewObject(tl.X, tl.Y, size.W, size.H, tag)
	obj.Data = data
	s.space.Add(obj)
}

// near returns the data of every object carrying tag in the cells r
// touches. The probe is grown by a pixel on each side so that rounded
// intersection tests never miss a neighbour in the next cell.
func (s *Space) near(r gamemath.Rect, tag string) []any {
	tl := r.TopLeft().Add(s.origin)
	size := r.Size()
	s.probe.X = tl.X - 1
	s.probe.Y = tl.Y - 1
	s.probe.W = size.W + 2
	s.probe.H = size.H + 2
	s.probe.Update()

	check := s.probe.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	objs := check.ObjectsByTags(tag)
	out := make([]any, 0, len(objs))
	for _, obj := range objs {
		out = append(out, obj.Data)
	}
	return out
}

func (s *Space) Walls(r gamemath.Rect) []*Wall {
	var walls []*Wall
	for _, d := range s.near(r, tagWall) {
		if w, ok := d.(*Wall); ok {
			walls = append(walls, w)
		}
	}
	return walls
}

func (s *Space) Doors(r gamemath.Rect) []*Door {
	var doors []*Door
	for _, d := range s.near(r, tagDoor) {
		if door, ok := d.(*Door); ok {
			doors = append(doors, door)
		}
	}
	return doors
}

func (s *Space) OneWays(r gamemath.Rect) []*OneWay {
	var oneWays []*OneWay
	for _, d := range s.near(r, tagOneWay) {
		if o, ok := d.(*OneWay); ok {
			oneWays = append(oneWays, o)
		}
	}
	return oneWays
}
