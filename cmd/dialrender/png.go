package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var outPath string

var pngCmd = &cobra.Command{
	Use:   "png",
	Short: "Render the dial to a PNG file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDial()
		if err != nil {
			return err
		}
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		if err := png.Encode(f, d.RenderImage()); err != nil {
			f.Close()
			return fmt.Errorf("encode %s: %w", outPath, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		st, err := os.Stat(outPath)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s)\n", outPath, humanize.Bytes(uint64(st.Size())))
		return nil
	},
}

func init() {
	pngCmd.Flags().StringVarP(&outPath, "output", "o", "dial.png", "output file")
}
