package core

import "github.com/automoto/nurture/shared/gamemath"

// ResolveMove returns where rect can get to this tick when displaced by
// delta. Each axis is tried on its own, X first: the axis takes its full
// displacement if isValid accepts the resulting rectangle and keeps its
// coordinate otherwise. There is no sweeping, so a blocked axis does not
// move at all.
func ResolveMove(rect gamemath.Rect, delta gamemath.Vec, isValid func(gamemath.Rect) bool) gamemath.Vec {
	pos := rect.Pos

	if delta.X != 0 {
		candidate := rect.At(gamemath.Vec{X: pos.X + delta.X, Y: pos.Y})
		if isValid(candidate) {
			pos.X = candidate.Pos.X
		}
	}

	if delta.Y != 0 {
		candidate := rect.At(gamemath.Vec{X: pos.X, Y: pos.Y + delta.Y})
		if isValid(candidate) {
			pos.Y = candidate.Pos.Y
		}
	}

	return pos
}
