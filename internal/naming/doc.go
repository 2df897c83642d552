// Package naming turns human-authored filenames into canonical slugs.
//
// [Slugify] is a pure function built from an ordered [Steps] table:
// lower-case, strip the "(NNNkbit_AAC)" export tag, map the fraction slash
// to "_", fold to ASCII (NFD decomposition with a whitelist fallback),
// replace non-alphanumeric runs, collapse and trim underscores, and fall
// back to [PlaceholderStem] when nothing is left. The extension is never
// touched.
//
// The package also builds sibling target paths ([TargetPath]) and tracks
// in-plan target claims ([ClaimTracker]) so callers can warn about two
// sources that slugify to the same name.
package naming
