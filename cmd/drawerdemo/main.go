// Command drawerdemo renders a small status bar through the drawer and
// writes the presented frame to a PNG file.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/drawer"
	"github.com/gogpu/drawer/config"
	"github.com/gogpu/drawer/recording"
	"github.com/gogpu/drawer/surface"
)

func main() {
	var (
		width      = flag.Int("width", 480, "bar width in logical units")
		height     = flag.Int("height", 24, "bar height in logical units")
		scale      = flag.Float64("scale", 0, "output scale factor (overrides config)")
		configPath = flag.String("config", config.DefaultPath(), "config file")
		output     = flag.String("output", "drawerdemo.png", "output file")
		verbose    = flag.Bool("v", false, "log every commit")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	drawer.SetLogger(log)

	if err := run(log, *width, *height, *scale, *configPath, *output); err != nil {
		log.Error("drawerdemo failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(log *slog.Logger, width, height int, scale float64, configPath, output string) error {
	cfg := config.Default()
	if err := cfg.LoadFile(configPath); err != nil {
		return err
	}
	if scale != 0 {
		cfg.ScaleFactor = scale
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	win := surface.NewWindow(width, height, cfg.Scale())
	defer win.Close()

	// Full bar.
	bar := recordBar(width, height, time.Now())
	d := drawer.New(bar, win)
	d.Commit(0, 0, drawer.WithScale(win.Scale()))

	out := image.NewRGBA(image.Rect(0, 0,
		surface.DeviceSize(width, win.Scale()), surface.DeviceSize(height, win.Scale())))
	n := win.Node().Present(out)
	log.Info("presented bar", slog.Int("rects", n))

	// Clock widget only: redraw the bar a minute later and commit just the
	// clock area, read from the right end of the new recording.
	clockW := min(64, width)
	clockX := width - clockW
	d.SetContent(recordBar(width, height, time.Now().Add(time.Minute)))
	res := d.Commit(clockX, 0,
		drawer.WithSize(clockW, height),
		drawer.WithSource(clockX, 0),
		drawer.WithScale(win.Scale()))
	n = win.Node().Present(out)
	log.Info("presented clock",
		slog.Bool("committed", res.Committed),
		slog.Any("damage", res.Damage),
		slog.Int("rects", n))

	return writePNG(output, out)
}

// recordBar records a bar with a group box on the left and a clock on the
// right.
func recordBar(width, height int, now time.Time) *recording.Recording {
	rec := recording.NewRecorder(width, height)

	rec.SetColor(color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff})
	rec.Clear()

	rec.SetColor(color.RGBA{R: 0x21, G: 0x5f, B: 0x78, A: 0xff})
	rec.FillRect(2, 2, 60, float64(height-4))
	rec.SetColor(color.White)
	baseline := float64(height)/2 + 4
	rec.DrawString("1 2 3", 8, baseline)

	clock := now.Format("15:04")
	rec.SetColor(color.RGBA{R: 0xe0, G: 0xe0, B: 0x60, A: 0xff})
	rec.DrawString(clock, float64(width-recording.TextAdvance(clock)-8), baseline)

	return rec.FinishRecording()
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
