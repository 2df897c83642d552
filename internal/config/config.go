// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. Defaults target a json_files/ tree of .txt presets with
// dot-prefixed entries hidden.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Defaults for the filesystem boundary.
const (
	DefaultRootDir        = "json_files"
	DefaultExtension      = ".txt"
	DefaultReservedPrefix = "."
	DefaultConfirmToken   = "y"
	DefaultManifestVar    = "PRESET_JSON_FILES"
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Paths.
	RootDir string // Positional arg; default "json_files".
	WorkDir string // Set at startup; plan paths are shown relative to it.

	// Candidate selection.
	Extension      string // Default: ".txt". Matched case-insensitively.
	ReservedPrefix string // Default: ".". Hidden dirs/files are never touched.

	// Confirmation.
	ConfirmToken string // Default: "y".
	AssumeYes    bool   // Skip the prompt (--yes).

	// Behavior flags.
	DryRun bool

	// HTML preset listing (optional).
	ManifestFile string // --manifest path; empty disables the update.
	ManifestVar  string // Default: "PRESET_JSON_FILES".

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		RootDir:        DefaultRootDir,
		Extension:      DefaultExtension,
		ReservedPrefix: DefaultReservedPrefix,
		ConfirmToken:   DefaultConfirmToken,
		AssumeYes:      false,
		DryRun:         false,
		ManifestVar:    DefaultManifestVar,
		Verbose:        false,
		ColorMode:      ColorAuto,
		CheckOnly:      false,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// NormalizeExtension guarantees a single leading dot, so "txt", ".txt" and
// "..txt" all become ".txt". Case is preserved.
func NormalizeExtension(ext string) string {
	ext = strings.TrimSpace(ext)
	ext = strings.TrimLeft(ext, ".")
	if ext == "" {
		return ""
	}
	return "." + ext
}

// Validate checks enum fields and required values. Extension and
// ConfirmToken are canonicalized in place.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	c.Extension = NormalizeExtension(c.Extension)
	if c.Extension == "" {
		return errors.New("extension must not be empty")
	}
	if strings.ContainsAny(c.Extension, `/\`) {
		return fmt.Errorf("invalid extension %q (must not contain path separators)", c.Extension)
	}

	if strings.ContainsAny(c.ReservedPrefix, `/\`) {
		return fmt.Errorf("invalid reserved prefix %q", c.ReservedPrefix)
	}

	c.ConfirmToken = strings.ToLower(strings.TrimSpace(c.ConfirmToken))
	if c.ConfirmToken == "" {
		return errors.New("confirmation token must not be empty")
	}

	if c.ManifestFile != "" && strings.TrimSpace(c.ManifestVar) == "" {
		return errors.New("manifest variable name must not be empty")
	}

	if c.RootDir == "" {
		return errors.New("need a root directory")
	}
	return nil
}
