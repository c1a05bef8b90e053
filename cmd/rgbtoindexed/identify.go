package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/davesmith10/RGBtoIndexed/internal/imgio"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect image format, size and color model",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	info, err := imgio.GetInfo(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "File:        %s\n", path)
	fmt.Fprintf(w, "Format:      %s\n", info.Format)
	fmt.Fprintf(w, "Dimensions:  %d x %d\n", info.Width, info.Height)
	fmt.Fprintf(w, "Color model: %s\n", info.ColorModel)
	if info.Palette > 0 {
		fmt.Fprintf(w, "Palette:     %d colors\n", info.Palette)
	}
	fmt.Fprintf(w, "File size:   %d bytes (%.1f MB)\n", len(data), float64(len(data))/(1024*1024))
	return nil
}
