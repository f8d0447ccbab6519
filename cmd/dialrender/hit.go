package main

import (
	"fmt"
	"time"

	"hsvdial/eui"

	"github.com/spf13/cobra"
)

var (
	hitX, hitY   float64
	dragTo       []float64
	secondaryHit bool
)

var hitCmd = &cobra.Command{
	Use:   "hit",
	Short: "Press the dial at a point and report the target and angles",
	Long: `hit simulates a pointer press at (--x, --y) in allocation coordinates,
optionally followed by drag motion through each --drag point given as x,y
pairs, and prints which handle the gesture controls.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(dragTo)%2 != 0 {
			return fmt.Errorf("--drag needs x,y pairs, got %d values", len(dragTo))
		}
		d, err := newDial()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		d.Handler = &eui.EventHandler{Handle: func(ev eui.UIEvent) {
			if ev.Type == eui.EventDialContext {
				fmt.Fprintln(out, "context menu")
			}
		}}

		var grab eui.Grab
		button := eui.ButtonPrimary
		if secondaryHit {
			button = eui.ButtonSecondary
		}
		now := time.Now()
		d.ButtonPress(eui.PointerEvent{X: hitX, Y: hitY, Button: button, Time: now}, &grab)
		target, active := d.Target()
		if !active {
			return nil
		}
		fmt.Fprintf(out, "target %s: alpha=%.6f beta=%.6f\n", target, d.Alpha(), d.Beta())
		for i := 0; i < len(dragTo); i += 2 {
			d.Motion(eui.PointerEvent{X: dragTo[i], Y: dragTo[i+1], Time: now}, &grab)
			fmt.Fprintf(out, "drag %g,%g: alpha=%.6f beta=%.6f\n", dragTo[i], dragTo[i+1], d.Alpha(), d.Beta())
		}
		d.ButtonRelease(eui.PointerEvent{Button: eui.ButtonPrimary, Time: now}, &grab)
		return nil
	},
}

func init() {
	f := hitCmd.Flags()
	f.Float64Var(&hitX, "x", 0, "press x in allocation coordinates")
	f.Float64Var(&hitY, "y", 0, "press y in allocation coordinates")
	f.Float64SliceVar(&dragTo, "drag", nil, "motion points as x,y pairs")
	f.BoolVar(&secondaryHit, "secondary", false, "press the context-menu button")
}
