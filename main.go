package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"os/signal"
	"syscall"

	"hsvdial/eui"

	"github.com/dustin/go-humanize"
	open "github.com/skratchdot/open-golang/open"
	clipboard "golang.design/x/clipboard"
)

var doDebug bool

func main() {
	var (
		renderPath string
		renderSize int
	)
	flag.StringVar(&dataDirPath, "data", dataDirPath, "directory holding settings.json")
	flag.BoolVar(&doDebug, "debug", false, "verbose/debug logging")
	flag.StringVar(&renderPath, "render", "", "render the configured dial to a PNG file and exit")
	flag.IntVar(&renderSize, "size", 256, "dial size in pixels for -render")
	openAfter := flag.Bool("open", false, "open the -render output in the default viewer")
	alpha := flag.Float64("alpha", gsdef.Alpha, "initial alpha angle in radians")
	beta := flag.Float64("beta", gsdef.Beta, "initial beta angle in radians")
	clockwise := flag.Bool("clockwise", gsdef.Clockwise, "sweep the arc clockwise")
	border := flag.Int("border", gsdef.BorderWidth, "border width in pixels (0-64)")
	dials := flag.Int("dials", gsdef.DialCount, "number of dials to show (1-4)")
	wrapDelta := flag.Bool("wrapDelta", false, "log drag steps wrapped into (-π, π]")
	flag.Parse()

	setupLogging(doDebug)
	defer func() {
		if r := recover(); r != nil {
			logPanic(r)
		}
	}()

	loadSettings()

	// Flags given on the command line win over saved settings.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "alpha":
			gs.Alpha = *alpha
		case "beta":
			gs.Beta = *beta
		case "clockwise":
			gs.Clockwise = *clockwise
		case "border":
			gs.BorderWidth = *border
		case "dials":
			gs.DialCount = *dials
		case "wrapDelta":
			gs.WrapDelta = *wrapDelta
		}
	})
	sanitizeSettings()

	if renderPath != "" {
		if err := renderDialPNG(renderPath, renderSize); err != nil {
			log.Fatalf("render: %v", err)
		}
		if *openAfter {
			if err := open.Run(renderPath); err != nil {
				logError("open %v: %v", renderPath, err)
			}
		}
		return
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard init: %v", err)
	} else {
		clipboardReady = true
	}

	applySettings()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer cancel()
	runGame(ctx)
}

// renderDialPNG writes the configured dial without opening a window.
func renderDialPNG(path string, size int) error {
	if size <= 0 {
		return fmt.Errorf("size %d must be positive", size)
	}
	d, err := configuredDial(gs.Alpha, gs.Beta, gs.Clockwise, gs.BorderWidth)
	if err != nil {
		return err
	}
	d.SetAllocation(image.Rect(0, 0, size, size))
	return writeDialPNG(path, d)
}

// configuredDial builds a detached dial with the given properties.
func configuredDial(alpha, beta float64, clockwise bool, border int) (*eui.Dial, error) {
	d := eui.NewDial()
	if err := d.SetAlpha(alpha); err != nil {
		return nil, err
	}
	if err := d.SetBeta(beta); err != nil {
		return nil, err
	}
	if err := d.SetBorderWidth(border); err != nil {
		return nil, err
	}
	d.SetClockwise(clockwise)
	return d, nil
}

// snapshotDial copies the visible state of d so it can be rasterized off
// the game loop without touching d's frame cache.
func snapshotDial(d *eui.Dial) (*eui.Dial, error) {
	s, err := configuredDial(d.Alpha(), d.Beta(), d.Clockwise(), d.BorderWidth())
	if err != nil {
		return nil, err
	}
	a := d.Allocation()
	s.SetAllocation(image.Rect(0, 0, a.Dx(), a.Dy()))
	return s, nil
}

func writeDialPNG(path string, d *eui.Dial) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, d.RenderImage()); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if st, err := os.Stat(path); err == nil {
		log.Printf("wrote %v (%s)", path, humanize.Bytes(uint64(st.Size())))
	}
	return nil
}
