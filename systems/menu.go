package systems

import (
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face faces come from freetype
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nurture/components"
	"github.com/automoto/nurture/config"
	"github.com/automoto/nurture/fonts"
	"github.com/automoto/nurture/score"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

var (
	menuBackground   = color.RGBA{20, 20, 30, 255}
	menuTextNormal   = color.RGBA{180, 180, 190, 255}
	menuTextSelected = color.RGBA{250, 220, 120, 255}
	menuTextLocked   = color.RGBA{80, 80, 90, 255}
	menuTitleY       = 120
	menuStartY       = 220
	menuItemHeight   = 36
)

// GetMenu returns the menu entity's data and input.
func GetMenu(e *ecs.ECS) (*components.MenuData, *components.InputData) {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		return nil, nil
	}
	return components.Menu.Get(entry), components.Input.Get(entry)
}

// SetMenuProgress copies saved progress into the menu.
// Levels must already be set.
func SetMenuProgress(menu *components.MenuData, p *score.Progress) {
	menu.Unlocked = make(map[string]bool, len(menu.Levels))
	for _, name := range menu.Levels {
		menu.Unlocked[name] = p.IsUnlocked(name, menu.Levels)
	}
	menu.Best = p.Best
	menu.Total = p.Total
}

func menuUnlocked(menu *components.MenuData, i int) bool {
	return menu.Unlocked[menu.Levels[i]]
}

// NewUpdateMenu creates an UpdateMenu system that starts the selected
// level through createLevelScene.
func NewUpdateMenu(sceneChanger SceneChanger, createLevelScene func(index int) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu, input := GetMenu(e)
		if menu == nil {
			return
		}

		n := len(menu.Levels)
		if n == 0 {
			return
		}

		// Navigate menu with wrap-around
		if GetAction(input, components.ActionMenuUp).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + n) % n
		}
		if GetAction(input, components.ActionMenuDown).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % n
		}

		if GetAction(input, components.ActionMenuSelect).JustPressed && menuUnlocked(menu, menu.SelectedIndex) {
			sceneChanger.ChangeScene(createLevelScene(menu.SelectedIndex))
		}

		if GetAction(input, components.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
	}
}

// DrawMenu renders the level select screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu, _ := GetMenu(e)
	if menu == nil {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), menuBackground, false)

	title := config.Game.Title
	titleWidth := text.BoundString(fonts.Title.Get(), title).Dx()
	text.Draw(screen, title, fonts.Title.Get(), (width-titleWidth)/2, menuTitleY, menuTextSelected)

	itemFont := fonts.Bold.Get()
	for i, name := range menu.Levels {
		label := name
		clr := menuTextNormal
		switch {
		case !menuUnlocked(menu, i):
			label += "  (locked)"
			clr = menuTextLocked
		case menu.Best[name].Any():
			label += fmt.Sprintf("  best %d", menu.Best[name].Total())
		}
		if i == menu.SelectedIndex {
			label = "> " + label
			if clr != menuTextLocked {
				clr = menuTextSelected
			}
		}
		labelWidth := text.BoundString(itemFont, label).Dx()
		text.Draw(screen, label, itemFont, (width-labelWidth)/2, menuStartY+i*menuItemHeight, clr)
	}

	footer := fmt.Sprintf("Total score %d   Arrows: choose   Enter: play   Esc: quit", menu.Total.Total())
	footerWidth := text.BoundString(fonts.Small.Get(), footer).Dx()
	text.Draw(screen, footer, fonts.Small.Get(), (width-footerWidth)/2, height-16, menuTextNormal)
}
