package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/automoto/icefall/fonts"
)

// PauseUI is the in-game pause overlay.
type PauseUI struct {
	UI *ebitenui.UI

	OnResume  func()
	OnRestart func()
	OnMenu    func()

	titleFace  text.Face
	normalFace text.Face
}

func NewPauseUI(onResume, onRestart, onMenu func()) *PauseUI {
	pui := &PauseUI{
		OnResume:   onResume,
		OnRestart:  onRestart,
		OnMenu:     onMenu,
		titleFace:  fonts.Title(),
		normalFace: fonts.Normal(),
	}
	pui.buildUI()
	return pui
}

func (pui *PauseUI) buildUI() {
	// Semi-transparent backdrop so the frozen game stays visible underneath.
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 150})),
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
		widget.LabelOpts.Text("PAUSED", &pui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{220, 240, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	for _, item := range []struct {
		label   string
		onClick func()
	}{
		{"Resume", pui.OnResume},
		{"Restart", pui.OnRestart},
		{"Menu", pui.OnMenu},
	} {
		onClick := item.onClick // Capture for closure
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(140, 24),
			),
			widget.ButtonOpts.Image(buttonImage()),
			widget.ButtonOpts.Text(item.label, &pui.normalFace, buttonTextColor()),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
		contentContainer.AddChild(button)
	}

	rootContainer.AddChild(contentContainer)

	pui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}
