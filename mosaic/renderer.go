package mosaic

import (
	"image/color"

	"github.com/chewxy/math32"

	"github.com/galantis-mo/HexaPictures/hexa"
	"github.com/galantis-mo/HexaPictures/pixels"
)

// Canvas is the surface one frame renders onto.
type Canvas interface {
	// Fill paints the whole surface with a single color.
	Fill(c color.Color)
	// Polygon draws a filled hexagon whose stroke color equals its fill
	// color, so cells show no border of their own.
	Polygon(corners [hexa.CornerCount]hexa.Point, c color.RGBA)
}

var background = color.RGBA{A: 255}

// RenderFrame draws one complete mosaic: clear to black, then one hexagon
// per grid cell covering the viewport, column by column, each filled with
// the source color at the cell's position.
//
// The cell ranges are inclusive so the half-covered cells at the right and
// bottom edges are drawn too. Centers past the viewport fold back into it
// (same wraparound as the sampler) for color lookup only; the hexagon itself
// is drawn at the true, unwrapped center.
func RenderFrame(dst Canvas, src *pixels.Source, vp Viewport, p hexa.Params) {
	dst.Fill(background)

	vw := float32(vp.W)
	vh := float32(vp.H)
	cols, rows := p.GridSize(vw, vh)

	for i := 0; i <= cols; i++ {
		for j := 0; j <= rows; j++ {
			center := hexa.CellCenter(i, j, p.IntervalX, p.IntervalY)

			wx := math32.Mod(center.X, vw)
			wy := math32.Mod(center.Y, vh)

			c := src.Sample(float64(wx/vw), float64(wy/vh))
			dst.Polygon(hexa.Vertices(center, p.Side), c)
		}
	}
}
