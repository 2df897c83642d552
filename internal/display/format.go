// Package display formats human-facing text: the banner, plan lines,
// counts and paths shown relative to the working directory.
package display

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/backmassage/slugren/internal/term"
)

// Plural returns "1 file" / "3 files" style counts.
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

// RelPath returns path relative to base for display. It falls back to path
// when base is empty or no relative form exists.
func RelPath(base, path string) string {
	if base == "" {
		return path
	}
	rel, err := filepath.Rel(base, path)
	if err != nil || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

// FormatRename returns the two plan lines for one rename:
//
//	- "json_files/Clasificación (128kbit_AAC).txt"
//	  -> "clasificacion.txt"
//
// The arrow and the new name carry the plan styles when colors are on.
func FormatRename(oldPath, newName string) [2]string {
	return [2]string{
		fmt.Sprintf("- %q", oldPath),
		fmt.Sprintf("  %s %s", term.Paint(term.Arrow, "->"), term.Paint(term.NewName, fmt.Sprintf("%q", newName))),
	}
}

// FormatSummary renders the final count line.
func FormatSummary(renamed, planned int, dryRun bool) string {
	verb := "renamed"
	if dryRun {
		verb = "would be renamed"
	}
	return fmt.Sprintf("%d of %s %s", renamed, Plural(planned, "file", "files"), verb)
}
