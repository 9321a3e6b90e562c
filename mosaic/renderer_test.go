package mosaic

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galantis-mo/HexaPictures/hexa"
	"github.com/galantis-mo/HexaPictures/pixels"
)

type polygonCall struct {
	corners [hexa.CornerCount]hexa.Point
	col     color.RGBA
}

// recordingCanvas captures draw calls instead of rasterizing them.
type recordingCanvas struct {
	fills    []color.Color
	polygons []polygonCall
}

func (r *recordingCanvas) Fill(c color.Color) {
	r.fills = append(r.fills, c)
}

func (r *recordingCanvas) Polygon(corners [hexa.CornerCount]hexa.Point, c color.RGBA) {
	r.polygons = append(r.polygons, polygonCall{corners: corners, col: c})
}

func (p polygonCall) centroid() hexa.Point {
	var cx, cy float32
	for _, c := range p.corners {
		cx += c.X
		cy += c.Y
	}
	n := float32(len(p.corners))
	return hexa.Point{X: cx / n, Y: cy / n}
}

var (
	dark  = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	light = color.RGBA{R: 220, G: 220, B: 220, A: 255}
)

// checkerboard builds a w x h source of alternating 10px squares.
func checkerboard(w, h int) *pixels.Source {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/10+y/10)%2 == 0 {
				img.Set(x, y, dark)
			} else {
				img.Set(x, y, light)
			}
		}
	}
	return pixels.FromImage(img)
}

func TestRenderFrameCellCount(t *testing.T) {
	src := checkerboard(100, 100)
	vp := Viewport{W: 100, H: 100}
	p := hexa.NewParams(5)

	canvas := &recordingCanvas{}
	RenderFrame(canvas, src, vp, p)

	require.Len(t, canvas.fills, 1, "one clear per frame")
	assert.Equal(t, color.RGBA{A: 255}, canvas.fills[0])

	cols, rows := p.GridSize(100, 100)
	require.Equal(t, 12, cols)
	require.Equal(t, 14, rows)
	assert.Len(t, canvas.polygons, (cols+1)*(rows+1))
}

func TestRenderFrameColumnOuterRowInner(t *testing.T) {
	src := checkerboard(100, 100)
	vp := Viewport{W: 100, H: 100}
	p := hexa.NewParams(5)

	canvas := &recordingCanvas{}
	RenderFrame(canvas, src, vp, p)

	_, rows := p.GridSize(100, 100)

	// Within the first column, y advances one interval per draw.
	for j := 0; j <= rows; j++ {
		c := canvas.polygons[j].centroid()
		assert.InDelta(t, p.IntervalY*float32(j), c.Y, 1e-2, "row %d", j)
	}

	// The next draw starts the second column back at the top.
	next := canvas.polygons[rows+1].centroid()
	assert.InDelta(t, p.IntervalX, next.X, 1e-2)
	assert.InDelta(t, 0, next.Y, 1e-2)
}

func TestRenderFrameDrawsAtUnwrappedCenters(t *testing.T) {
	src := checkerboard(100, 100)
	vp := Viewport{W: 100, H: 100}
	p := hexa.NewParams(5)

	canvas := &recordingCanvas{}
	RenderFrame(canvas, src, vp, p)

	cols, rows := p.GridSize(100, 100)

	// The last cell's center sits past both viewport edges, not folded back.
	lastCenter := hexa.CellCenter(cols, rows, p.IntervalX, p.IntervalY)
	got := canvas.polygons[len(canvas.polygons)-1].centroid()
	assert.InDelta(t, lastCenter.X, got.X, 1e-2)
	assert.InDelta(t, lastCenter.Y, got.Y, 1e-2)
	assert.Greater(t, got.X, float32(vp.W))
	assert.Greater(t, got.Y, float32(vp.H))

	// And the grid reaches the far edges, so nothing is left uncovered.
	assert.GreaterOrEqual(t, got.X+p.Side, float32(vp.W))
	assert.GreaterOrEqual(t, got.Y+p.Side, float32(vp.H))
}

func TestRenderFrameSamplesSourceColors(t *testing.T) {
	src := checkerboard(100, 100)
	vp := Viewport{W: 100, H: 100}
	p := hexa.NewParams(5)

	canvas := &recordingCanvas{}
	RenderFrame(canvas, src, vp, p)

	// Cell (0,0) samples the image origin.
	assert.Equal(t, dark, canvas.polygons[0].col)

	// Every fill color comes from the source, wrapped cells included.
	for k, poly := range canvas.polygons {
		if poly.col != dark && poly.col != light {
			t.Fatalf("polygon %d has color %v, not a checkerboard color", k, poly.col)
		}
	}
}

func TestRenderFrameHexagonShape(t *testing.T) {
	src := checkerboard(40, 40)
	vp := Viewport{W: 40, H: 40}
	p := hexa.NewParams(10)

	canvas := &recordingCanvas{}
	RenderFrame(canvas, src, vp, p)

	for _, poly := range canvas.polygons {
		c := poly.centroid()
		for k, corner := range poly.corners {
			dx := corner.X - c.X
			dy := corner.Y - c.Y
			dist := dx*dx + dy*dy
			assert.InDelta(t, p.Side*p.Side, dist, 0.1, "corner %d", k)
		}
	}
}

func TestRenderFrameAfterResize(t *testing.T) {
	src := checkerboard(100, 100)
	vp := Viewport{W: 100, H: 100}

	p := hexa.NewParams(5)
	for n := 0; n < 3; n++ {
		p = p.Resize(+1)
	}
	require.Equal(t, float32(20), p.Side)

	canvas := &recordingCanvas{}
	RenderFrame(canvas, src, vp, p)

	cols, rows := p.GridSize(100, 100)
	require.Equal(t, 3, cols)
	require.Equal(t, 4, rows)
	assert.Len(t, canvas.polygons, (cols+1)*(rows+1))
}
