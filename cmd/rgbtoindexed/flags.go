package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davesmith10/RGBtoIndexed/internal/color"
	"github.com/davesmith10/RGBtoIndexed/internal/palette"
	"github.com/davesmith10/RGBtoIndexed/internal/pipeline"
)

// addPaletteFlags registers the flags shared by every command that dithers.
func addPaletteFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("palette", "p", cfg.Palette, "Palette: built-in name, file, or list of hex colors")
	cmd.Flags().String("palette-dir", cfg.PaletteDir, "Directory searched for palette files")
	cmd.Flags().Float64P("dither", "d", cfg.DitherAmount, "Fraction of quantization error to diffuse (0 disables dithering)")
	cmd.Flags().String("metric", cfg.Metric, "Color distance metric (rgb, lab)")
	cmd.Flags().String("engine", cfg.Engine, "Dither engine (native, library)")
}

// paletteFromFlags resolves the palette flag into a ready index.
func paletteFromFlags(cmd *cobra.Command) (*palette.Index, string, error) {
	ref, _ := cmd.Flags().GetString("palette")
	dir, _ := cmd.Flags().GetString("palette-dir")

	colors, name, err := palette.Resolve(ref, dir)
	if err != nil {
		return nil, "", err
	}
	idx, err := palette.NewIndex(colors)
	if err != nil {
		return nil, "", fmt.Errorf("palette %s: %w", name, err)
	}
	return idx, name, nil
}

// convertOptionsFromFlags reads the dither, metric and engine flags.
func convertOptionsFromFlags(cmd *cobra.Command) (pipeline.ConvertOptions, error) {
	amount, _ := cmd.Flags().GetFloat64("dither")
	metricStr, _ := cmd.Flags().GetString("metric")
	engineStr, _ := cmd.Flags().GetString("engine")

	metric, err := color.ParseMetric(metricStr)
	if err != nil {
		return pipeline.ConvertOptions{}, err
	}
	engine, err := pipeline.ParseEngine(engineStr)
	if err != nil {
		return pipeline.ConvertOptions{}, err
	}
	return pipeline.ConvertOptions{Amount: amount, Metric: metric, Engine: engine}, nil
}
