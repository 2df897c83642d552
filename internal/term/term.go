// Package term holds the ANSI styles used on the console and decides whether
// they are active.
//
// Styles are named by role rather than by color: the logger paints its level
// tags, display paints the banner and the "->" marker of each planned rename.
// [Configure] sets them once during startup; when colors are disabled every
// style is the empty string and [Paint] returns its input unchanged.
package term

import (
	"os"
	"regexp"
	"strings"

	"github.com/backmassage/slugren/internal/config"
)

// Role styles. Empty when colors are disabled.
var (
	InfoTag    = ""
	SuccessTag = ""
	WarnTag    = ""
	ErrorTag   = ""
	DebugTag   = ""
	Banner     = ""
	Arrow      = "" // Plan marker between old and new name.
	NewName    = "" // Target filename in the plan.
	Reset      = ""
)

var reEscape = regexp.MustCompile("\033\\[[0-9;]*m")

// Configure resolves the color mode and sets the role styles. Call once
// during startup (from [logging.New]).
func Configure(mode config.ColorMode) {
	if !resolve(mode) {
		InfoTag, SuccessTag, WarnTag, ErrorTag, DebugTag = "", "", "", "", ""
		Banner, Arrow, NewName, Reset = "", "", "", ""
		return
	}
	InfoTag = "\033[1;94m"
	SuccessTag = "\033[1;92m"
	WarnTag = "\033[1;93m"
	ErrorTag = "\033[1;91m"
	DebugTag = "\033[1;96m"
	Banner = "\033[1;95m"
	Arrow = "\033[1;96m"
	NewName = "\033[92m"
	Reset = "\033[0m"
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return Reset != "" }

// Paint wraps s in style when colors are enabled.
func Paint(style, s string) string {
	if style == "" || Reset == "" {
		return s
	}
	return style + s + Reset
}

// Strip removes ANSI color sequences, for sinks that must stay plain text
// such as the log file.
func Strip(s string) string {
	if !strings.Contains(s, "\033[") {
		return s
	}
	return reEscape.ReplaceAllString(s, "")
}

// resolve determines whether colors should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY (character device).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
