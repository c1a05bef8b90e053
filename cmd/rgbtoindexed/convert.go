package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/davesmith10/RGBtoIndexed/internal/imgio"
	"github.com/davesmith10/RGBtoIndexed/internal/logging"
	"github.com/davesmith10/RGBtoIndexed/internal/pipeline"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Dither images to a palette",
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringArrayP("input", "i", nil, "Input image (repeatable)")
	convertCmd.Flags().StringP("output", "o", "", "Output image (single input only)")
	convertCmd.Flags().String("out-dir", "", "Output directory for one or more inputs")
	convertCmd.Flags().String("format", cfg.Format, "Output format (png, gif, bmp, tiff); default from output extension")
	convertCmd.Flags().Int("workers", cfg.Workers, "Images converted in parallel")
	addPaletteFlags(convertCmd)
	convertCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(convertCmd)
}

type convertJob struct {
	input  string
	output string
	format string
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputs, _ := cmd.Flags().GetStringArray("input")
	outputPath, _ := cmd.Flags().GetString("output")
	outDir, _ := cmd.Flags().GetString("out-dir")
	format, _ := cmd.Flags().GetString("format")
	workers, _ := cmd.Flags().GetInt("workers")

	jobs, err := planJobs(inputs, outputPath, outDir, format)
	if err != nil {
		return err
	}

	idx, paletteName, err := paletteFromFlags(cmd)
	if err != nil {
		return err
	}
	opts, err := convertOptionsFromFlags(cmd)
	if err != nil {
		return err
	}

	log := logging.With(logging.ComponentConvert)
	log.Info("converting",
		"files", len(jobs),
		"palette", paletteName,
		"colors", idx.Len(),
		"dither", opts.Amount,
		"metric", opts.Metric,
		"engine", opts.Engine)

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	if workers < 1 {
		workers = 1
	}
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(workers)

	var mu sync.Mutex
	out := cmd.OutOrStdout()

	for _, job := range jobs {
		job := job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			inputData, err := os.ReadFile(job.input)
			if err != nil {
				return fmt.Errorf("reading %s: %w", job.input, err)
			}

			result, err := pipeline.Run(inputData, pipeline.Options{
				Index:   idx,
				Convert: opts,
				Format:  job.format,
			})
			if err != nil {
				return fmt.Errorf("%s: %w", job.input, err)
			}

			if err := os.WriteFile(job.output, result.Data, 0644); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			log.Debug("wrote", "input", job.input, "output", job.output, "bytes", len(result.Data))

			mu.Lock()
			defer mu.Unlock()
			fmt.Fprintf(out, "Converted %dx%d %s → %s (%d of %d colors)\n",
				result.Width, result.Height, result.SrcFormat, result.Format, result.ColorsUsed, idx.Len())
			fmt.Fprintf(out, "Input:  %s (%d bytes)\n", job.input, len(inputData))
			fmt.Fprintf(out, "Output: %s (%d bytes)\n", job.output, len(result.Data))
			return nil
		})
	}

	return g.Wait()
}

// planJobs pairs each input with its output path and format.
func planJobs(inputs []string, outputPath, outDir, format string) ([]convertJob, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("no input images")
	}
	if outputPath != "" && outDir != "" {
		return nil, fmt.Errorf("--output and --out-dir are mutually exclusive")
	}
	if outputPath == "" && outDir == "" {
		return nil, fmt.Errorf("one of --output or --out-dir is required")
	}
	if outputPath != "" && len(inputs) > 1 {
		return nil, fmt.Errorf("--output takes a single input; use --out-dir for %d inputs", len(inputs))
	}
	if format != "" && !slices.Contains(imgio.Formats, format) {
		return nil, fmt.Errorf("unsupported output format: %q", format)
	}

	jobs := make([]convertJob, 0, len(inputs))
	seen := make(map[string]string, len(inputs))
	for _, in := range inputs {
		job := convertJob{input: in, output: outputPath, format: format}
		if outDir != "" {
			f := format
			if f == "" {
				f = "png"
			}
			base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
			job.output = filepath.Join(outDir, base+"."+f)
		}
		if job.format == "" {
			job.format = imgio.FormatFromPath(job.output)
			if job.format == "" {
				return nil, fmt.Errorf("cannot write %s: unsupported extension (use --format with one of %s)",
					job.output, strings.Join(imgio.Formats, ", "))
			}
		}
		if prev, dup := seen[job.output]; dup {
			return nil, fmt.Errorf("%s and %s would both be written to %s", prev, in, job.output)
		}
		seen[job.output] = in
		jobs = append(jobs, job)
	}
	return jobs, nil
}
