package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into selection, behavior, manifest, display, and utility.
// Negated flags (e.g. --no-color) are applied after Parse so Config defaults hold unless set.

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and exits.
// On error it returns non-nil (e.g. unknown flag, too many positional args).
func ParseFlags(cfg *Config, version string) error {
	n, err := parseArgs(cfg, os.Args[1:], io.Discard)
	if err != nil {
		return err
	}
	if n.showHelp {
		printUsage(os.Stderr, version)
		os.Exit(0)
	}
	if n.showVersion {
		fmt.Fprintln(os.Stdout, "slugren v"+version)
		os.Exit(0)
	}
	return nil
}

// parseArgs does the actual parsing so tests can drive it with a fixed
// argument list. flagOutput receives the flag package's own error text.
func parseArgs(cfg *Config, args []string, flagOutput io.Writer) (negatedFlags, error) {
	fs := flag.NewFlagSet("slugren", flag.ContinueOnError)
	fs.SetOutput(flagOutput)
	fs.Usage = func() {}

	// Negated/override flags: we capture bools then apply to cfg after Parse,
	// so that defaults from DefaultConfig() hold unless the user passes the flag.
	var negated negatedFlags

	defineSelectionFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg)
	defineManifestFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, &negated)

	if err := fs.Parse(args); err != nil {
		return negated, err
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp || negated.showVersion {
		return negated, nil
	}
	return negated, parsePositionalArgs(fs, cfg)
}

// negatedFlags holds boolean flags that are applied after Parse.
// These either invert a default or trigger exit (showHelp, showVersion).
type negatedFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineSelectionFlags registers -e/--ext and --prefix.
func defineSelectionFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.Extension, "ext", cfg.Extension, "Candidate file extension")
	fs.StringVar(&cfg.Extension, "e", cfg.Extension, "Same as --ext")
	fs.StringVar(&cfg.ReservedPrefix, "prefix", cfg.ReservedPrefix, "Reserved name prefix for hidden entries")
}

// defineBehaviorFlags registers dry-run, yes and the confirmation token.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview only; do not rename")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
	fs.BoolVar(&cfg.AssumeYes, "yes", false, "Do not ask for confirmation")
	fs.BoolVar(&cfg.AssumeYes, "y", false, "Same as --yes")
	fs.StringVar(&cfg.ConfirmToken, "token", cfg.ConfirmToken, "Answer that confirms the rename")
}

// defineManifestFlags registers --manifest and --manifest-var.
func defineManifestFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.ManifestFile, "manifest", "", "HTML file whose preset list is regenerated")
	fs.StringVar(&cfg.ManifestVar, "manifest-var", cfg.ManifestVar, "JS constant holding the preset list")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.Var(&colorModeValue{&cfg.ColorMode}, "color-mode", "Color output: auto | always | never")
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, n *negatedFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies negated and override flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets RootDir from the optional positional arg.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	switch len(args) {
	case 0:
		return nil
	case 1:
		cfg.RootDir = NormalizeDirArg(args[0])
		return nil
	default:
		return fmt.Errorf("expected at most one root_dir, got %d arguments", len(args))
	}
}

// printUsage writes the help text to w. Column-aligned for readability.
func printUsage(w io.Writer, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "slugren v" + version + " - batch filename normalizer"},
		{"", ""},
		{"  slugren [OPTIONS] [root_dir]", ""},
		{"", ""},
		{"Selection", ""},
		{"  -e, --ext <ext>", "Candidate extension (default: " + DefaultExtension + ")"},
		{"  --prefix <prefix>", "Hidden-entry prefix (default: " + DefaultReservedPrefix + ")"},
		{"", ""},
		{"Behavior", ""},
		{"  -d, --dry-run", "Preview only; do not rename"},
		{"  -y, --yes", "Do not ask for confirmation"},
		{"  --token <word>", "Answer that confirms (default: " + DefaultConfirmToken + ")"},
		{"", ""},
		{"Manifest", ""},
		{"  --manifest <html>", "Regenerate the preset list in this HTML file"},
		{"  --manifest-var <name>", "JS constant name (default: " + DefaultManifestVar + ")"},
		{"", ""},
		{"Display", ""},
		{"  --color-mode <mode>", "auto | always | never (default: auto)"},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Diagnostics (root, candidates, manifest)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(w)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(w, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(w, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// colorModeValue is a flag.Value adapter for the ColorMode enum.
type colorModeValue struct{ p *ColorMode }

func (c *colorModeValue) String() string {
	if c.p == nil {
		return ""
	}
	return string(*c.p)
}

func (c *colorModeValue) Set(s string) error {
	switch ColorMode(strings.ToLower(s)) {
	case ColorAuto:
		*c.p = ColorAuto
	case ColorAlways:
		*c.p = ColorAlways
	case ColorNever:
		*c.p = ColorNever
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
	return nil
}
