package naming

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// PlaceholderStem replaces a stem that slugifies to nothing ("().txt").
const PlaceholderStem = "file"

// fractionSlash is U+2044, common in titles like "Ação ⁄ Reação".
const fractionSlash = '⁄'

// ErrInvalidUTF8 is returned by the primary ASCII fold when the stem is not
// valid UTF-8 and cannot be decomposed.
var ErrInvalidUTF8 = errors.New("naming: stem is not valid UTF-8")

// Step is one stage of the slug pipeline. Steps are evaluated in order by
// [Slugify]; each receives the output of the previous one.
type Step struct {
	Name  string
	Apply func(stem string) string
}

var (
	// reBitrateTag matches the encoder annotation " (128kbit_AAC)" that
	// audio exports append to titles.
	reBitrateTag = regexp.MustCompile(`(?i)\s*\(\d+kbit_aac\)`)

	reNonSlug     = regexp.MustCompile(`[^a-z0-9]+`)
	reUnderscores = regexp.MustCompile(`_+`)
	reSlug        = regexp.MustCompile(`^[a-z0-9]+(_[a-z0-9]+)*$`)
)

// Steps is the ordered slug pipeline applied to a filename stem. Semantic
// cleanup runs on readable text first; structural normalization runs last.
// The fold drops U+2044 along with every other non-ASCII rune, so
// "1⁄2" becomes "12"; the fraction-slash step only matters for stems that
// still carry it.
var Steps = []Step{
	{"lowercase", strings.ToLower},
	{"strip-bitrate-tag", StripBitrateTag},
	{"ascii-fold", foldASCII},
	{"fraction-slash", replaceFractionSlash},
	{"non-slug-runs", func(s string) string { return reNonSlug.ReplaceAllString(s, "_") }},
	{"collapse-underscores", func(s string) string { return reUnderscores.ReplaceAllString(s, "_") }},
	{"trim-underscores", func(s string) string { return strings.Trim(s, "_") }},
	{"placeholder", func(s string) string {
		if s == "" {
			return PlaceholderStem
		}
		return s
	}},
}

// Slugify maps a filename to its canonical form: lower-case ASCII letters and
// digits separated by single underscores, followed by the untouched
// extension. It never fails.
//
//	"Clasificación (128kbit_AAC).txt" -> "clasificacion.txt"
//	"Ação ⁄ Reação.txt"               -> "acao_reacao.txt"
//	"().txt"                          -> "file.txt"
func Slugify(filename string) string {
	stem, ext := SplitExt(filename)
	for _, step := range Steps {
		stem = step.Apply(stem)
	}
	return stem + ext
}

// SplitExt splits a filename at its last period. ext keeps the period and is
// empty when there is none.
func SplitExt(filename string) (stem, ext string) {
	ext = filepath.Ext(filename)
	return strings.TrimSuffix(filename, ext), ext
}

// IsSlug reports whether stem is already in canonical slug form.
func IsSlug(stem string) bool { return reSlug.MatchString(stem) }

// StripBitrateTag removes every "(<n>kbit_aac)" annotation together with
// the whitespace before it. The rest of the text keeps its case.
func StripBitrateTag(s string) string {
	return reBitrateTag.ReplaceAllString(s, "")
}

// DisplayName is the human label for a file: the name without bitrate tag
// and without ext (matched case-insensitively). Other extensions are kept.
func DisplayName(filename, ext string) string {
	stem, got := SplitExt(filename)
	if !strings.EqualFold(got, ext) {
		return StripBitrateTag(filename)
	}
	return StripBitrateTag(stem)
}

func replaceFractionSlash(s string) string {
	return strings.ReplaceAll(s, string(fractionSlash), "_")
}

// asciiOnly drops every rune outside ASCII once NFD has split accented
// letters into base letter + combining mark.
var asciiOnly = runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII }))

// foldASCII runs the primary decomposition and falls back to the whitelist
// filter when it fails.
func foldASCII(s string) string {
	folded, err := decomposeASCII(s)
	if err != nil {
		return whitelistASCII(s)
	}
	return folded
}

// decomposeASCII is the primary fold: canonical decomposition, then removal
// of anything that has no ASCII form ("é" -> "e", "ß" -> "").
func decomposeASCII(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", ErrInvalidUTF8
	}
	out, _, err := transform.String(transform.Chain(norm.NFD, asciiOnly), s)
	if err != nil {
		return "", fmt.Errorf("naming: ascii fold: %w", err)
	}
	return out, nil
}

// whitelistASCII keeps ASCII letters, digits and whitespace and deletes
// everything else, including the bytes of invalid sequences.
//
// Slugify never reaches it: the lowercase step already rewrites invalid
// bytes to U+FFFD, which decomposes cleanly. It guards direct callers of
// foldASCII.
func whitelistASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
			b.WriteByte(c)
		case c == ' ', c == '\t', c == '\n', c == '\r', c == '\v', c == '\f':
			b.WriteByte(c)
		}
	}
	return b.String()
}
