package pixels

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"
	"net/http"
	"os"
	"strings"

	"github.com/anthonynsimon/bild/clone"
)

// Source is an immutable raster image: dimensions plus a flat row-major
// pixel buffer. It is loaded once at startup and only ever read afterwards.
type Source struct {
	w, h int
	pix  []color.RGBA
}

// Load reads and decodes the image at path, which is either a local file or
// an http(s) URL. PNG and JPEG are registered; anything else fails with the
// decoder's error.
func Load(path string) (*Source, error) {
	r, err := open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return FromImage(img), nil
}

func open(path string) (io.ReadCloser, error) {
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		return os.Open(path)
	}

	resp, err := http.Get(path)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, path)
	}
	return resp.Body, nil
}

// FromImage flattens a decoded image into a Source. Whatever the decoder
// produced (paletted PNG, YCbCr JPEG) is normalized to RGBA first.
func FromImage(img image.Image) *Source {
	rgba := clone.AsRGBA(img)
	b := rgba.Bounds()
	w, h := b.Dx(), b.Dy()

	pix := make([]color.RGBA, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pix[y*w+x] = rgba.RGBAAt(b.Min.X+x, b.Min.Y+y)
		}
	}

	return &Source{w: w, h: h, pix: pix}
}

// W returns the image width in pixels.
func (s *Source) W() int { return s.w }

// H returns the image height in pixels.
func (s *Source) H() int { return s.h }

// Sample returns the pixel nearest the normalized position (nx, ny), where
// (0,0) is the top-left corner and (1,1) the bottom-right. A position whose
// flat index lands outside the buffer wraps around to a valid index instead
// of clamping to the edge, so Sample never fails; requests just past the
// bottom-right fold back to the start of the buffer. The wrap is visible as
// a seam near that corner and downstream consumers rely on it staying put.
func (s *Source) Sample(nx, ny float64) color.RGBA {
	col := int(math.Floor(float64(s.w) * nx))
	row := int(math.Floor(float64(s.h) * ny))

	idx := (row*s.w + col) % len(s.pix)
	if idx < 0 {
		idx += len(s.pix)
	}
	return s.pix[idx]
}
