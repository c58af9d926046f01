package systems

import (
	"math"

	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nurture/components"
	"github.com/automoto/nurture/config"
)

// UpdateCamera moves the camera toward the player at Camera.Speed, keeping
// the view inside the level when the level is larger than the screen.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	ld, _ := GetLevel(e)
	if ld == nil || ld.Level == nil {
		return
	}

	center := ld.Level.Player().Rect().Center()
	targetX := clampAxis(center.X, ld.Level.Size.W, float64(config.Game.Width))
	targetY := clampAxis(center.Y, ld.Level.Size.H, float64(config.Game.Height))

	if !camera.Snapped {
		camera.Position.X, camera.Position.Y = targetX, targetY
		camera.Snapped = true
		return
	}

	step := config.Camera.Speed / float64(max(config.Game.TPS, 1))
	camera.Position.X = approach(camera.Position.X, targetX, step)
	camera.Position.Y = approach(camera.Position.Y, targetY, step)
}

// clampAxis keeps a camera coordinate so that the screen stays inside
// [0, level]. A level smaller than the screen is centred.
func clampAxis(target, level, screen float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, target))
}

func approach(from, to, step float64) float64 {
	if math.Abs(to-from) <= step {
		return to
	}
	if to > from {
		return from + step
	}
	return from - step
}
