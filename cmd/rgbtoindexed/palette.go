package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davesmith10/RGBtoIndexed/internal/palette"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "List and inspect palettes",
}

var paletteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in palettes",
	Args:  cobra.NoArgs,
	RunE:  runPaletteList,
}

var paletteShowCmd = &cobra.Command{
	Use:   "show [palette]",
	Short: "Show a palette's colors with their Lab values",
	Args:  cobra.ExactArgs(1),
	RunE:  runPaletteShow,
}

func init() {
	paletteShowCmd.Flags().String("palette-dir", cfg.PaletteDir, "Directory searched for palette files")
	paletteCmd.AddCommand(paletteListCmd, paletteShowCmd)
	rootCmd.AddCommand(paletteCmd)
}

func runPaletteList(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	for _, name := range palette.BuiltinNames() {
		colors, _ := palette.Builtin(name)
		fmt.Fprintf(w, "%-8s %3d colors\n", name, len(colors))
	}
	return nil
}

func runPaletteShow(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("palette-dir")
	colors, name, err := palette.Resolve(args[0], dir)
	if err != nil {
		return err
	}
	idx, err := palette.NewIndex(colors)
	if err != nil {
		return fmt.Errorf("palette %s: %w", name, err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Palette: %s (%d colors)\n", name, idx.Len())
	for i, e := range idx.Entries() {
		fmt.Fprintf(w, "%3d  %s  rgb(%3d,%3d,%3d)  lab(%6.2f, %7.2f, %7.2f)\n",
			i, e.RGB, e.RGB.R, e.RGB.G, e.RGB.B, e.Lab.L, e.Lab.A, e.Lab.B)
	}
	return nil
}
