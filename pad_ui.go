package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/TkmOhara/kero3d/pad"
)

// PadUI is the on-screen writer side of the virtual control surface: a
// d-pad and two action buttons that overwrite the pad's axes and latches.
// It clears its own buttons on release; the simulation never does.
type PadUI struct {
	ui  *ebitenui.UI
	pad *pad.Pad

	axisX, axisY float64
	jump, punch  bool
}

func NewPadUI(p *pad.Pad) *PadUI {
	padUI := &PadUI{pad: p}

	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 200})
	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}

	holdButton := func(label string, press, release func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.PressedHandler(func(args *widget.ButtonPressedEventArgs) {
				press()
			}),
			widget.ButtonOpts.ReleasedHandler(func(args *widget.ButtonReleasedEventArgs) {
				release()
			}),
		)
	}

	dpad := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(3),
			widget.GridLayoutOpts.Spacing(4, 4),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionStart,
			VerticalPosition:   widget.AnchorLayoutPositionEnd,
		})),
	)
	spacer := func() *widget.Container { return widget.NewContainer() }
	dpad.AddChild(spacer())
	dpad.AddChild(holdButton("^",
		func() { padUI.setAxes(padUI.axisX, -1) },
		func() { padUI.setAxes(padUI.axisX, 0) },
	))
	dpad.AddChild(spacer())
	dpad.AddChild(holdButton("<",
		func() { padUI.setAxes(-1, padUI.axisY) },
		func() { padUI.setAxes(0, padUI.axisY) },
	))
	dpad.AddChild(spacer())
	dpad.AddChild(holdButton(">",
		func() { padUI.setAxes(1, padUI.axisY) },
		func() { padUI.setAxes(0, padUI.axisY) },
	))
	dpad.AddChild(spacer())
	dpad.AddChild(holdButton("v",
		func() { padUI.setAxes(padUI.axisX, 1) },
		func() { padUI.setAxes(padUI.axisX, 0) },
	))
	dpad.AddChild(spacer())

	actions := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionEnd,
			VerticalPosition:   widget.AnchorLayoutPositionEnd,
		})),
	)
	actions.AddChild(holdButton("JUMP",
		func() { padUI.setButtons(true, padUI.punch) },
		func() { padUI.setButtons(false, padUI.punch) },
	))
	actions.AddChild(holdButton("PUNCH",
		func() { padUI.setButtons(padUI.jump, true) },
		func() { padUI.setButtons(padUI.jump, false) },
	))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{Left: 24, Right: 24, Bottom: 24}),
		)),
	)
	root.AddChild(dpad)
	root.AddChild(actions)

	padUI.ui = &ebitenui.UI{Container: root}
	return padUI
}

func (p *PadUI) setAxes(x, y float64) {
	p.axisX, p.axisY = x, y
	p.pad.SetAxes(x, y)
}

func (p *PadUI) setButtons(jump, punch bool) {
	p.jump, p.punch = jump, punch
	p.pad.SetButtons(jump, punch)
}

func (p *PadUI) Update() {
	p.ui.Update()
}

func (p *PadUI) Draw(screen *ebiten.Image) {
	p.ui.Draw(screen)
}
