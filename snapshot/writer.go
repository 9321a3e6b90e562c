package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var snapLog zerolog.Logger = log.With().Str("module", "snapshot").Logger()

const (
	filePrefix = "mosaic_"
	fileExt    = ".png"
)

// Writer hands out sequentially numbered PNG paths inside one directory. A
// number is never reused, including numbers left behind by previous runs, so
// saves cannot overwrite each other.
type Writer struct {
	dir  string
	next int
}

// NewWriter creates dir if needed and resumes numbering after the highest
// frame already present.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	w := &Writer{dir: dir, next: 1}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileExt) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileExt))
		if err == nil && n >= w.next {
			w.next = n + 1
		}
	}

	return w, nil
}

// Save encodes img as PNG under the next free number and returns the path
// written. O_EXCL keeps a stale counter from clobbering an existing file;
// on a collision the writer just moves to the next number.
func (w *Writer) Save(img image.Image) (string, error) {
	for {
		path := filepath.Join(w.dir, fmt.Sprintf("%s%06d%s", filePrefix, w.next, fileExt))

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			w.next++
			continue
		}
		if err != nil {
			return "", err
		}

		if err := png.Encode(f, img); err != nil {
			f.Close()
			os.Remove(path)
			return "", err
		}
		if err := f.Close(); err != nil {
			return "", err
		}

		w.next++
		snapLog.Info().Str("path", path).Msg("frame saved")
		return path, nil
	}
}
