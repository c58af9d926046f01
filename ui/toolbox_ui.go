package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/automoto/nurture/components"
	"github.com/automoto/nurture/core"
	"github.com/automoto/nurture/systems"
)

// ToolboxUI is the clickable toolbox: walk buttons for every child type in
// the level and a button that ends the level.
type ToolboxUI struct {
	UI    *ebitenui.UI
	Level *components.LevelData

	statusLabel *widget.Label
	nextButton  *widget.Button

	normalFace text.Face
	smallFace  text.Face
}

func NewToolboxUI(level *components.LevelData) *ToolboxUI {
	tui := &ToolboxUI{Level: level}
	tui.loadFonts()
	tui.buildUI()
	return tui
}

func (tui *ToolboxUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	tui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	tui.smallFace = &text.GoTextFace{Source: fontSource, Size: 11}
}

func (tui *ToolboxUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(8)),
		)),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 200})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	for _, t := range core.ChildTypes {
		if tui.Level.Level.Child(t) == nil {
			continue
		}
		panel.AddChild(tui.buildChildControls(t))
	}

	tui.nextButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 28)),
		widget.ButtonOpts.Image(nextButtonImage()),
		widget.ButtonOpts.Text("Next", &tui.normalFace, buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if !tui.Level.Done {
				tui.Level.Level.RequestNextLevel()
			}
		}),
	)
	panel.AddChild(tui.nextButton)

	tui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &tui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	panel.AddChild(tui.statusLabel)

	rootContainer.AddChild(panel)
	tui.UI = &ebitenui.UI{Container: rootContainer}
}

func (tui *ToolboxUI) buildChildControls(t core.ChildType) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	command := func(dir core.WalkDirection) func(*widget.ButtonClickedEventArgs) {
		return func(args *widget.ButtonClickedEventArgs) {
			tui.Level.Selected = t
			if systems.CommandChild(tui.Level, t, dir) {
				tui.statusLabel.Label = fmt.Sprintf("%s walks %s", t.Name(), dir)
			} else {
				tui.statusLabel.Label = fmt.Sprintf("%s is busy", t.Name())
			}
		}
	}

	row.AddChild(tui.walkButton("<", command(core.Left)))
	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(t.Name(), &tui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))
	row.AddChild(tui.walkButton(">", command(core.Right)))
	return row
}

func (tui *ToolboxUI) walkButton(label string, onClick func(*widget.ButtonClickedEventArgs)) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(28, 28)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &tui.normalFace, buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(onClick),
	)
}

// Update runs the UI and greys out the Next button once the level is over.
func (tui *ToolboxUI) Update() {
	tui.UI.Update()
	tui.nextButton.GetWidget().Disabled = tui.Level.Done
}

func buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     color.RGBA{255, 255, 255, 255},
		Hover:    color.RGBA{255, 255, 200, 255},
		Pressed:  color.RGBA{200, 200, 200, 255},
		Disabled: color.RGBA{100, 100, 100, 255},
	}
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func nextButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
	}
}
