package main

import (
	"flag"
	"image"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/galantis-mo/HexaPictures/config"
	"github.com/galantis-mo/HexaPictures/hexa"
	"github.com/galantis-mo/HexaPictures/mosaic"
	"github.com/galantis-mo/HexaPictures/pixels"
	"github.com/galantis-mo/HexaPictures/snapshot"
)

var appLog zerolog.Logger = log.With().Str("module", "app").Logger()

// App drives the frame loop: one full mosaic render per tick, with input
// applied strictly between frames.
type App struct {
	cfg    config.Config
	src    *pixels.Source
	vp     mosaic.Viewport
	params hexa.Params

	frame  *ebiten.Image
	canvas *mosaic.ImageCanvas
	shots  *snapshot.Writer
	panel  *InfoPanel

	saved int
}

func NewApp(cfg config.Config, src *pixels.Source, vp mosaic.Viewport) (*App, error) {
	shots, err := snapshot.NewWriter(cfg.OutputDir)
	if err != nil {
		return nil, err
	}

	frame := ebiten.NewImage(vp.W, vp.H)

	a := &App{
		cfg:    cfg,
		src:    src,
		vp:     vp,
		params: hexa.NewParams(hexa.MinSide),
		frame:  frame,
		canvas: mosaic.NewImageCanvas(frame),
		shots:  shots,
		panel:  newInfoPanel(src, vp),
	}

	// Prerender once so a save on the very first tick still exports a
	// complete frame.
	mosaic.RenderFrame(a.canvas, a.src, a.vp, a.params)

	return a, nil
}

func (a *App) Update() error {
	for _, cmd := range pollCommands() {
		a.apply(cmd)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		a.panel.Toggle()
	}

	cols, rows := a.params.GridSize(float32(a.vp.W), float32(a.vp.H))
	a.panel.Refresh(a.params, cols, rows, a.saved)
	a.panel.Update()

	return nil
}

// apply executes one command. Size commands swap in a fresh parameter value;
// a save exports the previous completed frame, never a half-drawn one.
func (a *App) apply(cmd Command) {
	appLog.Debug().Stringer("command", cmd).Msg("command received")

	switch cmd {
	case IncreaseSize:
		a.params = a.params.Resize(+1)
		appLog.Info().Float32("side", a.params.Side).Msg("grid size increased")

	case DecreaseSize:
		before := a.params.Side
		a.params = a.params.Resize(-1)
		if a.params.Side != before {
			appLog.Info().Float32("side", a.params.Side).Msg("grid size decreased")
		}

	case SaveFrame:
		path, err := a.shots.Save(a.captureFrame())
		if err != nil {
			appLog.Error().Err(err).Msg("frame save failed")
			return
		}
		a.saved++
		appLog.Info().Str("path", path).Int("count", a.saved).Msg("frame exported")
	}
}

// captureFrame copies the offscreen frame into a plain RGBA image.
func (a *App) captureFrame() *image.RGBA {
	buf := make([]byte, 4*a.vp.W*a.vp.H)
	a.frame.ReadPixels(buf)

	return &image.RGBA{
		Pix:    buf,
		Stride: 4 * a.vp.W,
		Rect:   image.Rect(0, 0, a.vp.W, a.vp.H),
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	mosaic.RenderFrame(a.canvas, a.src, a.vp, a.params)
	screen.DrawImage(a.frame, nil)

	status := "UP/= grow  DOWN/- shrink  S save  TAB info\n"
	status += "side=" + itoa(int(a.params.Side)) + "  saved=" + itoa(a.saved)
	ebitenutil.DebugPrint(screen, status)

	a.panel.Draw(screen)
}

func (a *App) Layout(outsideW, outsideH int) (int, int) {
	return a.vp.W, a.vp.H
}

func main() {
	imagePath := flag.String("image", "", "path to the source image (png or jpeg)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if *imagePath == "" {
		flag.Usage()
		appLog.Fatal().Msg("an image path is required")
	}

	cfg, err := config.Load()
	if err != nil {
		appLog.Fatal().Err(err).Msg("bad configuration")
	}

	src, err := pixels.Load(*imagePath)
	if err != nil {
		appLog.Fatal().Err(err).Str("path", *imagePath).Msg("cannot load image")
	}
	appLog.Info().Str("path", *imagePath).
		Int("width", src.W()).Int("height", src.H()).
		Msg("image loaded")

	mw, mh := ebiten.Monitor().Size()
	capW := int(cfg.ScreenFraction * float64(mw))
	capH := int(cfg.ScreenFraction * float64(mh))
	if mw == 0 || mh == 0 {
		// No usable display metrics; let the image dictate the window.
		capW, capH = src.W(), src.H()
	}

	vp := mosaic.FitViewport(src.W(), src.H(), capW, capH)
	appLog.Info().Int("width", vp.W).Int("height", vp.H).Msg("viewport fitted")

	app, err := NewApp(cfg, src, vp)
	if err != nil {
		appLog.Fatal().Err(err).Msg("startup failed")
	}

	ebiten.SetWindowTitle(cfg.WindowTitle)
	ebiten.SetWindowSize(vp.W, vp.H)

	if err := ebiten.RunGame(app); err != nil {
		appLog.Fatal().Err(err).Msg("game loop aborted")
	}
}

func itoa(v int) string {
	// tiny helper to avoid fmt in the frame loop
	if v == 0 {
		return "0"
	}
	neg := false
	if v < 0 {
		neg = true
		v = -v
	}
	var buf [32]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + (v % 10))
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
