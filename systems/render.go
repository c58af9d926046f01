package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nurture/components"
	"github.com/automoto/nurture/core"
	"github.com/automoto/nurture/shared/gamemath"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
	pixel  *ebiten.Image
)

var palette = map[string]color.RGBA{
	"red":    {220, 60, 60, 255},
	"blue":   {70, 110, 230, 255},
	"green":  {60, 190, 90, 255},
	"yellow": {230, 200, 60, 255},
	"purple": {160, 80, 200, 255},
	"orange": {240, 140, 40, 255},
}

var (
	wallColor       = color.RGBA{90, 90, 100, 255}
	goalColor       = color.RGBA{250, 220, 120, 255}
	oneWayColor     = color.RGBA{170, 170, 180, 255}
	solidifierColor = color.RGBA{120, 200, 230, 255}
	playerColor     = color.RGBA{240, 240, 240, 255}
	solidColor      = color.RGBA{130, 130, 130, 255}
)

var childColors = map[core.ChildType]color.RGBA{
	core.Larry: {240, 140, 40, 255},
	core.Thing: {160, 80, 200, 255},
	core.Bloat: {100, 200, 80, 255},
}

// camera converts world positions to screen positions.
type camera struct {
	offX, offY float64
}

func screenCamera(e *ecs.ECS, screen *ebiten.Image) (camera, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return camera{}, false
	}
	c := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return camera{
		offX: float64(width)/2 - c.Position.X,
		offY: float64(height)/2 - c.Position.Y,
	}, true
}

// drawRect fills r through a shared 1x1 image, rotated by angle around
// its centre.
func (c camera) drawRect(screen *ebiten.Image, r gamemath.Rect, angle float64, clr color.Color) {
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}
	size := r.Size()

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(size.W, size.H)
	if angle != 0 {
		drawOp.GeoM.Translate(-size.W/2, -size.H/2)
		drawOp.GeoM.Rotate(angle)
		drawOp.GeoM.Translate(size.W/2, size.H/2)
	}
	drawOp.GeoM.Translate(r.Left()+c.offX, r.Top()+c.offY)
	drawOp.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(pixel, drawOp)
}

func interactableColor(name string, fallback color.RGBA) color.RGBA {
	if c, ok := palette[name]; ok {
		return c
	}
	return fallback
}

// faded scales the alpha of c, keeping it premultiplied.
func faded(c color.RGBA, alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// DrawLevel renders every wall, interactable and person as a coloured rect.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	ld, _ := GetLevel(e)
	if ld == nil || ld.Level == nil {
		return
	}
	cam, ok := screenCamera(e, screen)
	if !ok {
		return
	}
	l := ld.Level

	if g := l.Goal(); g != nil {
		alpha := 0.35 + 0.15*float64(g.Occupancy())
		cam.drawRect(screen, g.Rect(), 0, faded(goalColor, min(alpha, 1)))
	}
	for _, s := range l.Solidifiers() {
		cam.drawRect(screen, s.Rect(), 0, faded(interactableColor(s.Color(), solidifierColor), 0.5))
	}
	for _, w := range l.Walls() {
		cam.drawRect(screen, w.Rect(), 0, wallColor)
	}
	for _, o := range l.OneWays() {
		cam.drawRect(screen, o.Rect(), 0, interactableColor(o.Color(), oneWayColor))
	}
	for _, d := range l.Doors() {
		c := interactableColor(d.Color(), wallColor)
		switch d.State() {
		case core.DoorOpen:
			c = faded(c, 0.25)
		case core.DoorOpening, core.DoorClosing:
			c = faded(c, 0.6)
		}
		cam.drawRect(screen, d.Rect(), 0, c)
	}
	for _, s := range l.Switches() {
		c := interactableColor(s.Color(), wallColor)
		if s.State() == core.SwitchOff || s.State() == core.SwitchTurningOff {
			c = faded(c, 0.5)
		}
		cam.drawRect(screen, s.Rect(), 0, c)
	}
	for _, j := range l.JumpPads() {
		c := interactableColor(j.Color(), goalColor)
		if !j.Active() {
			c = faded(c, 0.35)
		}
		cam.drawRect(screen, j.Rect(), 0, c)
	}

	for _, c := range l.Children() {
		clr := childColors[c.Type]
		if c.Solid() {
			clr = solidColor
		}
		cam.drawRect(screen, c.Rect(), 0, clr)
	}

	p := l.Player()
	clr := playerColor
	if p.Solid() {
		clr = solidColor
	}
	cam.drawRect(screen, p.Rect(), p.Combo().Angle(), clr)
}
