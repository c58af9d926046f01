package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the world point shown at the centre of the screen.
type CameraData struct {
	Position math.Vec2
	Snapped  bool // false until the first update jumps to the target
}

var Camera = donburi.NewComponentType[CameraData]()
