package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face faces come from freetype
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nurture/fonts"
)

const hudMargin = 12

var (
	hudTextColor  = color.RGBA{230, 230, 230, 255}
	hudDimColor   = color.RGBA{150, 150, 160, 255}
	hudPanelColor = color.RGBA{0, 0, 0, 180}
)

// DrawHUD shows the level name, how many are in the goal, the running
// score and which child the keyboard toolbox commands.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	ld, _ := GetLevel(e)
	if ld == nil || ld.Level == nil {
		return
	}

	regular := fonts.Regular.Get()
	small := fonts.Small.Get()

	text.Draw(screen, ld.Name, fonts.Bold.Get(), hudMargin, hudMargin+18, hudTextColor)
	text.Draw(screen, fmt.Sprintf("In goal: %d", ld.Level.ToSave()), regular, hudMargin, hudMargin+42, hudTextColor)
	text.Draw(screen, fmt.Sprintf("Score: %d", ld.Score.Total()), regular, hudMargin, hudMargin+62, hudTextColor)
	if len(ld.Level.Children()) > 0 {
		hint := fmt.Sprintf("Commanding %s   [ / ] walk   Tab switch", ld.Selected.Name())
		text.Draw(screen, hint, small, hudMargin, hudMargin+82, hudDimColor)
	}

	if ld.Done {
		drawResult(screen, ld.Score.Semantic(), ld.Score.Breakdown())
	}
}

func drawResult(screen *ebiten.Image, headline string, lines []string) {
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	panelW, panelH := float32(520), float32(140+20*len(lines))
	x, y := (width-panelW)/2, (height-panelH)/2

	vector.FillRect(screen, x, y, panelW, panelH, hudPanelColor, false)

	tx, ty := int(x)+24, int(y)+40
	text.Draw(screen, "Level complete", fonts.Title.Get(), tx, ty, hudTextColor)
	ty += 36
	text.Draw(screen, headline, fonts.Regular.Get(), tx, ty, hudTextColor)
	for _, line := range lines {
		ty += 20
		text.Draw(screen, line, fonts.Small.Get(), tx, ty, hudDimColor)
	}
	text.Draw(screen, "Enter: next level   R: retry   Esc: menu", fonts.Small.Get(), tx, int(y+panelH)-14, hudDimColor)
}
