// Package config holds runtime configuration: defaults, the external
// archive directory resolved from .env or the process environment, and
// validation of enum fields.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// ExternalDirKey is the .env / environment variable naming the external
// archive root used for duplicate detection.
const ExternalDirKey = "COMIC_SORTER_EXTERNAL_DIR"

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by CLI flag binding before being passed (by pointer) to
// packages that need it.
type Config struct {
	// TargetDir is the directory whose comic files are processed.
	// Set from the positional argument; defaults to the working directory.
	TargetDir string

	// ExternalDir is the read-only archive root consulted for duplicates.
	// Empty disables duplicate detection. Resolved by [LoadExternalDir].
	ExternalDir string

	// Behavior flags.
	DryRun  bool // Report intended actions without touching the filesystem.
	Verbose bool // Print each per-file decision.

	// Display and logging.
	ColorMode ColorMode
	LogFile   string // Optional log file path (append mode).
}

// DefaultConfig returns a Config with the target directory set to the
// current working directory and colors in auto mode.
func DefaultConfig() Config {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return Config{
		TargetDir: cwd,
		ColorMode: ColorAuto,
	}
}

// LoadExternalDir resolves the external archive directory. The .env file in
// the working directory takes precedence; the process environment variable
// is the fallback. A missing or malformed .env file is treated as empty:
// duplicate detection is advisory and must never block a run.
func LoadExternalDir() string {
	vals, err := godotenv.Read(".env")
	if err != nil {
		vals = nil
	}
	if v := strings.TrimSpace(vals[ExternalDirKey]); v != "" {
		return v
	}
	return strings.TrimSpace(os.Getenv(ExternalDirKey))
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that enum fields hold valid values and that a target
// directory is set.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}
	if c.TargetDir == "" {
		return errors.New("target directory must not be empty")
	}
	return nil
}
