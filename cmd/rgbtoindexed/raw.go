package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/davesmith10/RGBtoIndexed/internal/ir"
	"github.com/davesmith10/RGBtoIndexed/internal/logging"
	"github.com/davesmith10/RGBtoIndexed/internal/pipeline"
)

var rawCmd = &cobra.Command{
	Use:   "raw",
	Short: "Dither raw RGBA pixels (raw output + JSON sidecar)",
	RunE:  runRaw,
}

func init() {
	rawCmd.Flags().StringP("input", "i", "", "Input raw RGBA file")
	rawCmd.Flags().StringP("output", "o", "", "Output raw RGBA file")
	rawCmd.Flags().Int("width", 0, "Image width")
	rawCmd.Flags().Int("height", 0, "Image height")
	addPaletteFlags(rawCmd)
	rawCmd.MarkFlagRequired("input")
	rawCmd.MarkFlagRequired("output")
	rawCmd.MarkFlagRequired("width")
	rawCmd.MarkFlagRequired("height")
	rootCmd.AddCommand(rawCmd)
}

type rawMeta struct {
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Format  string   `json:"format"`
	Palette string   `json:"palette"`
	Colors  []string `json:"colors"`
	Dither  float64  `json:"dither"`
	Metric  string   `json:"metric"`
	Engine  string   `json:"engine"`
}

func runRaw(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")

	idx, paletteName, err := paletteFromFlags(cmd)
	if err != nil {
		return err
	}
	opts, err := convertOptionsFromFlags(cmd)
	if err != nil {
		return err
	}

	pixels, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	src, err := ir.FromBytes(pixels, width, height)
	if err != nil {
		return err
	}

	out, err := pipeline.ConvertIndex(src, idx, opts)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, out.Pixels, 0644); err != nil {
		return fmt.Errorf("writing raw RGBA: %w", err)
	}

	// Write JSON sidecar
	colors := idx.Colors()
	meta := rawMeta{
		Width:   width,
		Height:  height,
		Format:  "RGBA8",
		Palette: paletteName,
		Colors:  make([]string, len(colors)),
		Dither:  opts.Amount,
		Metric:  opts.Metric.String(),
		Engine:  opts.Engine.String(),
	}
	for i, c := range colors {
		meta.Colors[i] = c.String()
	}
	metaJSON, _ := json.MarshalIndent(meta, "", "  ")
	metaPath := strings.TrimSuffix(outputPath, ".rgba") + ".json"
	if err := os.WriteFile(metaPath, metaJSON, 0644); err != nil {
		return fmt.Errorf("writing sidecar: %w", err)
	}

	logging.With(logging.ComponentRaw).Debug("wrote sidecar", "path", metaPath)
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Dithered %dx%d → raw RGBA (%d bytes)\n", width, height, len(out.Pixels))
	fmt.Fprintf(w, "Sidecar: %s\n", metaPath)
	return nil
}
