package mosaic

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/galantis-mo/HexaPictures/hexa"
)

// ImageCanvas draws onto an ebiten image.
type ImageCanvas struct {
	dst *ebiten.Image
}

func NewImageCanvas(dst *ebiten.Image) *ImageCanvas {
	return &ImageCanvas{dst: dst}
}

func (c *ImageCanvas) Fill(col color.Color) {
	c.dst.Fill(col)
}

// Polygon fills the hexagon as a vector path, then strokes its edges in the
// same color. The stroke hides the hairline seams the rasterizer leaves
// between adjacent filled cells.
func (c *ImageCanvas) Polygon(corners [hexa.CornerCount]hexa.Point, col color.RGBA) {
	var path vector.Path
	path.MoveTo(corners[0].X, corners[0].Y)
	for k := 1; k < len(corners); k++ {
		path.LineTo(corners[k].X, corners[k].Y)
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(col.R) / 255.0
		vs[i].ColorG = float32(col.G) / 255.0
		vs[i].ColorB = float32(col.B) / 255.0
		vs[i].ColorA = float32(col.A) / 255.0
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.FillRule = ebiten.FillRuleNonZero
	c.dst.DrawTriangles(vs, is, whiteImage(), op)

	for k := 0; k < len(corners); k++ {
		n := (k + 1) % len(corners)
		vector.StrokeLine(c.dst, corners[k].X, corners[k].Y, corners[n].X, corners[n].Y, 1, col, false)
	}
}

// whiteImage returns a small white image for solid color fills.
var whiteImageInstance *ebiten.Image

func whiteImage() *ebiten.Image {
	if whiteImageInstance == nil {
		whiteImageInstance = ebiten.NewImage(3, 3)
		whiteImageInstance.Fill(color.White)
	}
	return whiteImageInstance
}
