package ui

import (
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/automoto/icefall/fonts"
	"github.com/automoto/icefall/levels"
)

// MenuUI is the title screen: one button per built-in level, plus quit.
type MenuUI struct {
	UI *ebitenui.UI

	OnPlay func(levelName string)
	OnQuit func()

	titleFace  text.Face
	normalFace text.Face
}

func NewMenuUI(onPlay func(string), onQuit func()) *MenuUI {
	mui := &MenuUI{
		OnPlay:     onPlay,
		OnQuit:     onQuit,
		titleFace:  fonts.Title(),
		normalFace: fonts.Normal(),
	}
	mui.buildUI()
	return mui
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{18, 22, 34, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("ICEFALL", &mui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{220, 240, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	for _, name := range levels.Names() {
		levelName := name // Capture for closure
		label := strings.TrimSuffix(strings.TrimSuffix(levelName, ".txt"), ".tmx")
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(160, 24),
			),
			widget.ButtonOpts.Image(buttonImage()),
			widget.ButtonOpts.Text(label, &mui.normalFace, buttonTextColor()),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				mui.OnPlay(levelName)
			}),
		)
		contentContainer.AddChild(button)
	}

	quitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 24),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text("Quit", &mui.normalFace, buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			mui.OnQuit()
		}),
	)
	contentContainer.AddChild(quitButton)

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{50, 60, 85, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{70, 85, 115, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{35, 45, 65, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:    color.RGBA{235, 240, 250, 255},
		Hover:   color.RGBA{255, 255, 220, 255},
		Pressed: color.RGBA{200, 200, 210, 255},
	}
}
