package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log"
	"math"

	"hsvdial/eui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hako/durafmt"
	open "github.com/skratchdot/open-golang/open"
	dark "github.com/thiagokokada/dark-mode-go"
	clipboard "golang.design/x/clipboard"
)

const (
	dialGap    = 12
	labelLines = 2
)

var (
	gameCtx context.Context

	// clipboardReady is set once clipboard.Init succeeds.
	clipboardReady bool

	darkBG  = color.RGBA{R: 0x20, G: 0x22, B: 0x26, A: 0xff}
	lightBG = color.RGBA{R: 0xee, G: 0xee, B: 0xea, A: 0xff}
)

type Game struct {
	dials  []*eui.Dial
	hidden []bool
	grab   eui.Grab
	events *eui.EventHandler

	bg, fg color.RGBA

	screenW, screenH int
	layoutDirty      bool
}

func newGame() *Game {
	g := &Game{events: eui.NewHandler(), layoutDirty: true}
	g.events.Events = make(chan eui.UIEvent, 64)
	for i := 0; i < gs.DialCount; i++ {
		d := eui.NewDial()
		d.Handler = g.events
		d.WrapDelta = gs.WrapDelta
		d.OnRelayout = func() { g.layoutDirty = true }
		if err := d.SetAlpha(gs.Alpha); err != nil {
			logWarn("dial %d: %v", i, err)
		}
		if err := d.SetBeta(gs.Beta); err != nil {
			logWarn("dial %d: %v", i, err)
		}
		if err := d.SetBorderWidth(gs.BorderWidth); err != nil {
			logWarn("dial %d: %v", i, err)
		}
		d.SetClockwise(gs.Clockwise)
		g.dials = append(g.dials, d)
		g.hidden = append(g.hidden, false)
	}
	g.applyTheme()
	return g
}

func (g *Game) applyTheme() {
	theme := gs.Theme
	if theme == "" {
		darkMode, err := dark.IsDarkMode()
		if err != nil {
			logDebug("dark mode query: %v", err)
			darkMode = true
		}
		if darkMode {
			theme = "dark"
		} else {
			theme = "light"
		}
	}
	if theme == "light" {
		g.bg, g.fg = lightBG, color.RGBA{A: 0xff}
	} else {
		g.bg, g.fg = darkBG, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
}

// visible returns the dials currently shown, in draw order.
func (g *Game) visible() []*eui.Dial {
	out := make([]*eui.Dial, 0, len(g.dials))
	for i, d := range g.dials {
		if !g.hidden[i] {
			out = append(out, d)
		}
	}
	return out
}

func (g *Game) Update() error {
	if gameCtx != nil && gameCtx.Err() != nil {
		return ebiten.Termination
	}
	if g.layoutDirty {
		g.layoutDials()
	}

	// A window that loses focus mid-drag never sees the release.
	if !ebiten.IsFocused() {
		if owner := g.grab.Owner(); owner != nil {
			owner.Unmap(&g.grab)
		}
	}

	eui.UpdateDials(&g.grab, g.visible()...)
	g.handleKeys()
	g.drainEvents()

	if settingsDirty && g.grab.Owner() == nil {
		saveSettings()
	}
	return nil
}

// focusDial is the dial keyboard shortcuts act on: the one under the
// pointer, else the first visible one.
func (g *Game) focusDial() *eui.Dial {
	vis := g.visible()
	if len(vis) == 0 {
		return nil
	}
	x, y := eui.PointerPosition()
	for _, d := range vis {
		if d.Contains(x, y) {
			return d
		}
	}
	return vis[0]
}

func (g *Game) handleKeys() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	d := g.focusDial()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyK) && d != nil:
		d.SetClockwise(!d.Clockwise())
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) && d != nil:
		d.Rotate(math.Pi / 36)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) && d != nil:
		d.Rotate(-math.Pi / 36)
	case inpututil.IsKeyJustPressed(ebiten.KeyR) && d != nil:
		g.resetDial(d)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) && d != nil:
		g.nudgeBorder(d, -2)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) && d != nil:
		g.nudgeBorder(d, 2)
	case inpututil.IsKeyJustPressed(ebiten.KeyH) && len(g.dials) > 1:
		g.toggleLast()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC) && d != nil:
		g.copyAngles(d)
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS) && d != nil:
		g.exportDial(d)
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		if err := open.Run(dataDirPath); err != nil {
			logError("open %v: %v", dataDirPath, err)
		}
	}
}

func (g *Game) resetDial(d *eui.Dial) {
	if err := d.SetAlpha(gsdef.Alpha); err != nil {
		logError("reset: %v", err)
	}
	if err := d.SetBeta(gsdef.Beta); err != nil {
		logError("reset: %v", err)
	}
	d.SetClockwise(gsdef.Clockwise)
}

func (g *Game) nudgeBorder(d *eui.Dial, delta int) {
	if err := d.SetBorderWidth(d.BorderWidth() + delta); err != nil {
		logDebug("border: %v", err)
		return
	}
	gs.BorderWidth = d.BorderWidth()
	settingsDirty = true
}

// toggleLast hides or shows the last dial. Hiding unmaps it so a drag in
// progress cannot keep the grab.
func (g *Game) toggleLast() {
	i := len(g.dials) - 1
	g.hidden[i] = !g.hidden[i]
	if g.hidden[i] {
		g.dials[i].Unmap(&g.grab)
	}
	g.layoutDirty = true
}

func (g *Game) copyAngles(d *eui.Dial) {
	s := angleSummary(d)
	if !clipboardReady {
		logWarn("clipboard unavailable; angles: %s", s)
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(s))
	logDebug("copied %q", s)
}

// exportDial saves a snapshot of d to a PNG chosen in a native dialog. The
// dialog blocks, so it runs off the game loop.
func (g *Game) exportDial(d *eui.Dial) {
	snap, err := snapshotDial(d)
	if err != nil {
		logError("export: %v", err)
		return
	}
	go func() {
		path, err := pickExportFile()
		if err != nil {
			if err != errExportCancelled {
				logError("export: %v", err)
			}
			return
		}
		if err := writeDialPNG(path, snap); err != nil {
			logError("export %v: %v", path, err)
		}
	}()
}

func angleSummary(d *eui.Dial) string {
	dir := "ccw"
	if d.Clockwise() {
		dir = "cw"
	}
	return fmt.Sprintf("alpha=%.4f beta=%.4f %s", d.Alpha(), d.Beta(), dir)
}

func (g *Game) drainEvents() {
	for {
		select {
		case ev := <-g.events.Events:
			g.handleEvent(ev)
		default:
			return
		}
	}
}

func (g *Game) handleEvent(ev eui.UIEvent) {
	switch ev.Type {
	case eui.EventDialChanged:
		logDebug("dial %s: alpha=%.4f beta=%.4f delta=%.4f cw=%v",
			ev.Target, ev.Alpha, ev.Beta, ev.Delta, ev.Clockwise)
		if ev.Dial == g.dials[0] {
			gs.Alpha, gs.Beta, gs.Clockwise = ev.Alpha, ev.Beta, ev.Clockwise
			settingsDirty = true
		}
	case eui.EventDialGrab:
		logDebug("dial grab: target=%s modifiers=%b", ev.Target, ev.Modifiers)
	case eui.EventDialRelease:
		if ev.Duration > 0 {
			logDebug("dial release: target=%s after %s", ev.Target, durafmt.Parse(ev.Duration).LimitFirstN(2))
		} else {
			logDebug("dial release: target=%s", ev.Target)
		}
	case eui.EventDialContext:
		logDebug("dial context menu requested")
		if ev.Dial != nil {
			g.resetDial(ev.Dial)
		}
	}
}

// layoutDials splits the window into equal columns, one per visible dial,
// leaving room below each for its label.
func (g *Game) layoutDials() {
	g.layoutDirty = false
	vis := g.visible()
	if len(vis) == 0 || g.screenW == 0 {
		return
	}
	labelH := int(math.Ceil(gs.FontSize*1.4)) * labelLines
	colW := (g.screenW - dialGap*(len(vis)+1)) / len(vis)
	h := g.screenH - labelH - 2*dialGap
	for i, d := range vis {
		w, rh := d.SizeRequest()
		cw, ch := max(colW, w), max(h, rh)
		x := dialGap + i*(colW+dialGap)
		d.SetAllocation(image.Rect(x, dialGap, x+cw, dialGap+ch))
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)
	for _, d := range g.visible() {
		eui.DrawDial(screen, d)
		if d == g.grab.Owner() {
			g.drawDragRing(screen, d)
		}
		g.drawLabel(screen, d)
	}
}

// drawDragRing outlines the wheel of the dial holding the grab.
func (g *Game) drawDragRing(screen *ebiten.Image, d *eui.Dial) {
	a := d.Allocation()
	size := min(a.Dx(), a.Dy()) - 2*d.BorderWidth()
	if size <= 0 {
		return
	}
	cx := float32(a.Min.X) + float32(a.Dx())/2
	cy := float32(a.Min.Y) + float32(a.Dy())/2
	vector.StrokeCircle(screen, cx, cy, float32(size)/2+2, 1.5, g.fg, true)
}

func (g *Game) drawLabel(screen *ebiten.Image, d *eui.Dial) {
	if mainFont == nil {
		return
	}
	a := d.Allocation()
	dir := "counterclockwise"
	if d.Clockwise() {
		dir = "clockwise"
	}
	lines := []string{
		fmt.Sprintf("α %6.1f°  β %6.1f°", d.Alpha()*180/math.Pi, d.Beta()*180/math.Pi),
		fmt.Sprintf("%s, border %d", dir, d.BorderWidth()),
	}
	if target, active := d.Target(); active {
		lines[1] += ", dragging " + target.String()
	}
	op := &text.DrawOptions{}
	op.ColorScale.ScaleWithColor(g.fg)
	op.LineSpacing = gs.FontSize * 1.4
	op.GeoM.Translate(float64(a.Min.X), float64(a.Max.Y)+float64(dialGap)/2)
	text.Draw(screen, lines[0]+"\n"+lines[1], mainFont, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.screenW || outsideHeight != g.screenH {
		g.screenW, g.screenH = outsideWidth, outsideHeight
		g.layoutDirty = true
	}
	if outsideWidth >= 160 && outsideHeight >= 120 {
		if gs.WindowWidth != outsideWidth || gs.WindowHeight != outsideHeight {
			gs.WindowWidth = outsideWidth
			gs.WindowHeight = outsideHeight
			settingsDirty = true
		}
	}
	return outsideWidth, outsideHeight
}

func runGame(ctx context.Context) {
	gameCtx = ctx

	ebiten.SetWindowTitle("HSV Dial")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	op := &ebiten.RunGameOptions{ScreenTransparent: false}
	if err := ebiten.RunGameWithOptions(newGame(), op); err != nil {
		log.Printf("ebiten: %v", err)
	}
	saveSettings()
}
