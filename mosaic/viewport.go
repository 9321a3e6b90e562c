package mosaic

import "math"

// Viewport is the fixed window size in pixels, decided once at startup and
// never changed afterwards.
type Viewport struct {
	W int
	H int
}

// FitViewport sizes the window for an image: native dimensions when the
// image fits under the cap, otherwise scaled down along the long axis,
// preserving aspect ratio. Square images take the landscape branch. The cap
// is a fraction of the display resolution, computed by the caller.
func FitViewport(imgW, imgH, capW, capH int) Viewport {
	switch {
	case imgW >= imgH && imgW > capW:
		scale := float64(capW) / float64(imgW)
		return Viewport{W: capW, H: int(math.Round(float64(imgH) * scale))}
	case imgH > imgW && imgH > capH:
		scale := float64(capH) / float64(imgH)
		return Viewport{W: int(math.Round(float64(imgW) * scale)), H: capH}
	default:
		return Viewport{W: imgW, H: imgH}
	}
}
