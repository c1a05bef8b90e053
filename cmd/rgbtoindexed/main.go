package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/davesmith10/RGBtoIndexed/internal/config"
	"github.com/davesmith10/RGBtoIndexed/internal/logging"
)

// cfg supplies flag defaults. It is built before any init() so that every
// command sees values from .env and the environment.
var cfg = loadConfig()

// envFile names the .env file applied at startup, if one was found.
var envFile string

var rootCmd = &cobra.Command{
	Use:               "rgbtoindexed",
	Short:             "Reduce images to a fixed color palette with error-diffusion dithering",
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().String("log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
}

func loadConfig() config.Config {
	if err := godotenv.Load(); err == nil {
		envFile = ".env"
	}
	return config.Load()
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level, _ := cmd.Flags().GetString("log-level")
	if err := logging.Setup(cmd.ErrOrStderr(), level, cfg.Color); err != nil {
		return err
	}
	logging.With(logging.ComponentStartup).Debug("configuration loaded",
		"env_file", envFile,
		"palette", cfg.Palette,
		"metric", cfg.Metric,
		"engine", cfg.Engine,
		"workers", cfg.Workers)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
