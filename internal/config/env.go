// Package config reads runtime defaults from the environment.
package config

import (
	"os"
	"runtime"
	"strconv"
	"strings"
)

// Prefix is prepended to every environment variable read by Load.
const Prefix = "RGBTOINDEXED_"

// Config holds defaults for the command-line flags.
type Config struct {
	Palette      string
	PaletteDir   string
	DitherAmount float64
	Metric       string
	Engine       string
	Format       string
	Workers      int
	LogLevel     string
	Color        bool
}

// Load builds a Config from RGBTOINDEXED_* environment variables, falling
// back to built-in defaults.
func Load() Config {
	return Config{
		Palette:      Get(Prefix+"PALETTE", "bw"),
		PaletteDir:   Get(Prefix+"PALETTE_DIR", ""),
		DitherAmount: GetFloat(Prefix+"DITHER_AMOUNT", 0.75),
		Metric:       Get(Prefix+"METRIC", "rgb"),
		Engine:       Get(Prefix+"ENGINE", "native"),
		Format:       Get(Prefix+"FORMAT", ""),
		Workers:      GetInt(Prefix+"WORKERS", runtime.NumCPU()),
		LogLevel:     Get(Prefix+"LOG_LEVEL", "info"),
		Color:        os.Getenv("NO_COLOR") == "" && GetBool(Prefix+"LOG_COLOR", true),
	}
}

// Get returns the value of the environment variable `key` if set.
// If not set, and `key + "_FILE"` is set, the file at that path is read and
// its trimmed contents are returned. If neither are set, def is returned.
func Get(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if path := os.Getenv(key + "_FILE"); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			return strings.TrimSpace(string(data))
		}
	}
	return def
}

// GetInt returns the integer value of the environment variable `key`.
// If parsing fails or the variable is unset, def is returned.
func GetInt(key string, def int) int {
	if val := Get(key, ""); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return def
}

// GetFloat returns the floating-point value of the environment variable
// `key`, or def if it is unset or unparsable.
func GetFloat(key string, def float64) float64 {
	if val := Get(key, ""); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return def
}

// GetBool returns the boolean value of the environment variable `key`.
// Recognised true values are: 1, t, true, y, yes (case-insensitive).
// Recognised false values are: 0, f, false, n, no.
func GetBool(key string, def bool) bool {
	if val := Get(key, ""); val != "" {
		switch strings.ToLower(val) {
		case "1", "t", "true", "y", "yes":
			return true
		case "0", "f", "false", "n", "no":
			return false
		}
	}
	return def
}
