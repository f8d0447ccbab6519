package main

import (
	"fmt"
	"image"

	"hsvdial/eui"

	"github.com/spf13/cobra"
)

var (
	dialSize   int
	dialAlpha  float64
	dialBeta   float64
	clockwise  bool
	borderSize int
)

var rootCmd = &cobra.Command{
	Use:          "dialrender",
	Short:        "Render and probe two-handle HSV dials",
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&dialSize, "size", 256, "allocation width and height in pixels")
	pf.Float64Var(&dialAlpha, "alpha", 0, "alpha angle in radians")
	pf.Float64Var(&dialBeta, "beta", 3.141592653589793, "beta angle in radians")
	pf.BoolVar(&clockwise, "clockwise", false, "sweep the arc clockwise")
	pf.IntVar(&borderSize, "border", 0, "border width in pixels (0-64)")

	rootCmd.AddCommand(pngCmd, hitCmd)
}

// newDial builds a dial from the persistent flags.
func newDial() (*eui.Dial, error) {
	if dialSize <= 0 {
		return nil, fmt.Errorf("size %d must be positive", dialSize)
	}
	d := eui.NewDial()
	if err := d.SetAlpha(dialAlpha); err != nil {
		return nil, err
	}
	if err := d.SetBeta(dialBeta); err != nil {
		return nil, err
	}
	if err := d.SetBorderWidth(borderSize); err != nil {
		return nil, err
	}
	d.SetClockwise(clockwise)
	d.SetAllocation(image.Rect(0, 0, dialSize, dialSize))
	return d, nil
}
