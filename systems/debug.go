package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nurture/config"
	"github.com/automoto/nurture/shared/gamemath"
)

var (
	maskColor = color.RGBA{0, 255, 255, 255}
	bandColor = color.RGBA{255, 0, 255, 255}
)

// DrawDebug outlines every collision mask when Debug.DrawMasks is set.
// Jump pads also show the centre band that launches persons.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !config.Debug.DrawMasks {
		return
	}
	ld, _ := GetLevel(e)
	if ld == nil || ld.Level == nil {
		return
	}
	cam, ok := screenCamera(e, screen)
	if !ok {
		return
	}
	l := ld.Level

	outline := func(r gamemath.Rect, c color.Color) {
		vector.StrokeRect(screen,
			float32(r.Left()+cam.offX), float32(r.Top()+cam.offY),
			float32(r.Size().W), float32(r.Size().H),
			1, c, false)
	}

	for _, w := range l.Walls() {
		outline(w.Rect(), maskColor)
	}
	for _, d := range l.Doors() {
		outline(d.Rect(), maskColor)
	}
	for _, j := range l.JumpPads() {
		outline(j.Rect(), maskColor)
		outline(j.CenterBand(), bandColor)
	}
	for _, c := range l.Children() {
		outline(c.Rect(), maskColor)
	}
	outline(l.Player().Rect(), maskColor)
}
