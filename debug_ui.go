package main

import (
	"bytes"
	"fmt"
	"image/color"
	"strconv"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/galantis-mo/HexaPictures/hexa"
	"github.com/galantis-mo/HexaPictures/mosaic"
	"github.com/galantis-mo/HexaPictures/pixels"
)

// InfoPanel is a toggleable overlay showing the live grid parameters. It is
// read-only; grid changes flow through the keyboard commands only.
type InfoPanel struct {
	ui       *ebitenui.UI
	visible  bool
	fontFace text.Face

	// Value display labels, updated by Refresh
	values map[string]*widget.Text

	lastParams hexa.Params
	lastSaved  int
}

func newInfoPanel(src *pixels.Source, vp mosaic.Viewport) *InfoPanel {
	p := &InfoPanel{
		visible:   false,
		values:    make(map[string]*widget.Text),
		lastSaved: -1,
	}

	p.fontFace = p.loadFont()
	p.ui = p.buildUI(src, vp)

	return p
}

// loadFont loads a basic font for the panel.
func (p *InfoPanel) loadFont() text.Face {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	return &text.GoTextFace{
		Source: source,
		Size:   14,
	}
}

// buildUI constructs the ebitenui interface.
func (p *InfoPanel) buildUI(src *pixels.Source, vp mosaic.Viewport) *ebitenui.UI {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Main panel container, pinned top-right so it stays off the HUD text
	panelContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.BackgroundImage(p.createPanelBackground()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				Padding:            widget.NewInsetsSimple(10),
			}),
			widget.WidgetOpts.MinSize(240, 0),
		),
	)

	panelContainer.AddChild(p.createLabel("MOSAIC", color.RGBA{255, 220, 100, 255}))

	panelContainer.AddChild(p.createLabel("-- Grid --", color.RGBA{180, 180, 255, 255}))
	panelContainer.AddChild(p.createValueRow("Side", "side"))
	panelContainer.AddChild(p.createValueRow("Interval X", "intervalX"))
	panelContainer.AddChild(p.createValueRow("Interval Y", "intervalY"))
	panelContainer.AddChild(p.createValueRow("Cells", "cells"))

	panelContainer.AddChild(p.createLabel("-- Output --", color.RGBA{180, 180, 255, 255}))
	panelContainer.AddChild(p.createStaticRow("Image", fmt.Sprintf("%d x %d", src.W(), src.H())))
	panelContainer.AddChild(p.createStaticRow("Viewport", fmt.Sprintf("%d x %d", vp.W, vp.H)))
	panelContainer.AddChild(p.createValueRow("Saved", "saved"))

	panelContainer.AddChild(p.createLabel("UP/= grow, DOWN/- shrink", color.RGBA{128, 128, 128, 255}))
	panelContainer.AddChild(p.createLabel("S saves a frame", color.RGBA{128, 128, 128, 255}))
	panelContainer.AddChild(p.createLabel("Press TAB to hide this panel", color.RGBA{128, 128, 128, 255}))

	rootContainer.AddChild(panelContainer)

	return &ebitenui.UI{Container: rootContainer}
}

// createPanelBackground creates a semi-transparent background for the panel.
func (p *InfoPanel) createPanelBackground() *image.NineSlice {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.RGBA{30, 35, 45, 230})
	return image.NewNineSliceSimple(img, 0, 0)
}

// createLabel creates a text label.
func (p *InfoPanel) createLabel(label string, clr color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, p.fontFace, clr),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Stretch: true,
			}),
		),
	)
}

// createValueRow creates a name/value row whose value Refresh keeps current.
func (p *InfoPanel) createValueRow(label, key string) *widget.Container {
	row, valueLabel := p.createRow(label, "-")
	p.values[key] = valueLabel
	return row
}

// createStaticRow creates a name/value row fixed at construction.
func (p *InfoPanel) createStaticRow(label, value string) *widget.Container {
	row, _ := p.createRow(label, value)
	return row
}

func (p *InfoPanel) createRow(label, value string) (*widget.Container, *widget.Text) {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	labelWidget := widget.NewText(
		widget.TextOpts.Text(label, p.fontFace, color.RGBA{200, 200, 200, 255}),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(100, 0),
		),
	)
	container.AddChild(labelWidget)

	valueLabel := widget.NewText(
		widget.TextOpts.Text(value, p.fontFace, color.RGBA{255, 255, 255, 255}),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(80, 0),
		),
	)
	container.AddChild(valueLabel)

	return container, valueLabel
}

// Refresh updates the dynamic rows. Cheap to call every tick; it only
// touches the labels when something changed.
func (p *InfoPanel) Refresh(params hexa.Params, cols, rows, saved int) {
	if params == p.lastParams && saved == p.lastSaved {
		return
	}
	p.lastParams = params
	p.lastSaved = saved

	p.values["side"].Label = formatFloat(params.Side)
	p.values["intervalX"].Label = formatFloat(params.IntervalX)
	p.values["intervalY"].Label = formatFloat(params.IntervalY)
	p.values["cells"].Label = fmt.Sprintf("%d x %d", cols+1, rows+1)
	p.values["saved"].Label = strconv.Itoa(saved)
}

// Toggle toggles the visibility of the panel.
func (p *InfoPanel) Toggle() {
	p.visible = !p.visible
}

// IsVisible returns whether the panel is visible.
func (p *InfoPanel) IsVisible() bool {
	return p.visible
}

// Update updates the UI state.
func (p *InfoPanel) Update() {
	if p.visible {
		p.ui.Update()
	}
}

// Draw draws the UI if visible.
func (p *InfoPanel) Draw(screen *ebiten.Image) {
	if p.visible {
		p.ui.Draw(screen)
	}
}

// formatFloat formats a float for display.
func formatFloat(v float32) string {
	s := strconv.FormatFloat(float64(v), 'f', 2, 32)
	for len(s) > 1 && s[len(s)-1] == '0' && s[len(s)-2] != '.' {
		s = s[:len(s)-1]
	}
	return s
}
