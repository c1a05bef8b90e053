package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/davesmith10/RGBtoIndexed/internal/imgio"
	"github.com/davesmith10/RGBtoIndexed/internal/ir"
	"github.com/davesmith10/RGBtoIndexed/internal/logging"
	"github.com/davesmith10/RGBtoIndexed/internal/palette"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode raw RGBA data to an image file",
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().StringP("input", "i", "", "Input raw RGBA file")
	encodeCmd.Flags().StringP("output", "o", "", "Output image file")
	encodeCmd.Flags().Int("width", 0, "Image width")
	encodeCmd.Flags().Int("height", 0, "Image height")
	encodeCmd.Flags().String("format", "", "Output format (png, gif, bmp, tiff); default from output extension")
	encodeCmd.Flags().StringP("palette", "p", "", "Write indexed output using this palette (pixels must already match it)")
	encodeCmd.Flags().String("palette-dir", cfg.PaletteDir, "Directory searched for palette files")
	encodeCmd.MarkFlagRequired("input")
	encodeCmd.MarkFlagRequired("output")
	encodeCmd.MarkFlagRequired("width")
	encodeCmd.MarkFlagRequired("height")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	format, _ := cmd.Flags().GetString("format")
	paletteRef, _ := cmd.Flags().GetString("palette")

	if format == "" {
		format = imgio.FormatFromPath(outputPath)
		if format == "" {
			return fmt.Errorf("cannot write %s: unsupported extension (use --format with one of %s)",
				outputPath, strings.Join(imgio.Formats, ", "))
		}
	}

	var idx *palette.Index
	if paletteRef != "" {
		var err error
		idx, _, err = paletteFromFlags(cmd)
		if err != nil {
			return err
		}
	}

	pixels, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	m, err := ir.FromBytes(pixels, width, height)
	if err != nil {
		return err
	}

	encoded, err := imgio.Encode(m, format, idx)
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	if err := os.WriteFile(outputPath, encoded, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	logging.With(logging.ComponentEncode).Debug("encoded", "format", format, "indexed", idx != nil)
	fmt.Fprintf(cmd.OutOrStdout(), "Encoded %dx%d RGBA → %s (%d bytes)\n", width, height, outputPath, len(encoded))
	return nil
}
