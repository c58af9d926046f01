package gamemath

import "math"

// Vec is a 2D point or displacement in world pixels.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec) Scale(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}

// Size is a width/height pair. Negative components are clamped to zero by NewRect.
type Size struct {
	W, H float64
}

// Anchor selects which point of a rectangle its position refers to.
type Anchor int

const (
	TopLeft Anchor = iota
	TopCenter
	TopRight
	CenterLeft
	Center
	CenterRight
	BottomLeft
	BottomCenter
	BottomRight
)

// fraction returns how far the anchor sits into the rectangle on each axis (0, 0.5 or 1).
func (a Anchor) fraction() (fx, fy float64) {
	switch a {
	case TopCenter:
		return 0.5, 0
	case TopRight:
		return 1, 0
	case CenterLeft:
		return 0, 0.5
	case Center:
		return 0.5, 0.5
	case CenterRight:
		return 1, 0.5
	case BottomLeft:
		return 0, 1
	case BottomCenter:
		return 0.5, 1
	case BottomRight:
		return 1, 1
	default:
		return 0, 0
	}
}

// Rect is an axis-aligned mask. Pos is the anchored position and may be
// moved freely; size and anchor are fixed at construction.
type Rect struct {
	Pos    Vec
	size   Size
	anchor Anchor
}

func NewRect(pos Vec, size Size, anchor Anchor) Rect {
	return Rect{
		Pos:    pos,
		size:   Size{W: math.Max(size.W, 0), H: math.Max(size.H, 0)},
		anchor: anchor,
	}
}

func (r Rect) Size() Size     { return r.size }
func (r Rect) Anchor() Anchor { return r.anchor }

func (r Rect) Left() float64 {
	fx, _ := r.anchor.fraction()
	return r.Pos.X - r.size.W*fx
}

func (r Rect) Top() float64 {
	_, fy := r.anchor.fraction()
	return r.Pos.Y - r.size.H*fy
}

func (r Rect) Right() float64  { return r.Left() + r.size.W }
func (r Rect) Bottom() float64 { return r.Top() + r.size.H }

func (r Rect) TopLeft() Vec {
	return Vec{X: r.Left(), Y: r.Top()}
}

func (r Rect) Center() Vec {
	return Vec{X: r.Left() + r.size.W/2, Y: r.Top() + r.size.H/2}
}

// At returns a copy of r positioned at pos.
func (r Rect) At(pos Vec) Rect {
	r.Pos = pos
	return r
}

// Intersects reports whether r and o overlap with positive area.
// Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	return overlaps(r.Left(), r.Right(), o.Left(), o.Right()) &&
		overlaps(r.Top(), r.Bottom(), o.Top(), o.Bottom())
}

// IntersectsRound is Intersects on edges rounded to whole pixels. Collision
// checks use it so that sub-pixel penetration caused by gravity does not
// count as contact.
func (r Rect) IntersectsRound(o Rect) bool {
	return overlaps(math.Round(r.Left()), math.Round(r.Right()), math.Round(o.Left()), math.Round(o.Right())) &&
		overlaps(math.Round(r.Top()), math.Round(r.Bottom()), math.Round(o.Top()), math.Round(o.Bottom()))
}

// InsetX returns the horizontal center band of r: frac of the width is
// removed from each side. frac is clamped to [0, 0.5].
func (r Rect) InsetX(frac float64) Rect {
	frac = math.Min(math.Max(frac, 0), 0.5)
	cut := r.size.W * frac
	return NewRect(Vec{X: r.Left() + cut, Y: r.Top()}, Size{W: r.size.W - 2*cut, H: r.size.H}, TopLeft)
}

func overlaps(aMin, aMax, bMin, bMax float64) bool {
	return aMin < bMax && bMin < aMax
}
