// Package pipeline orchestrates one batch run: precondition check,
// discovery, planning, confirmation, renaming and the final summary.
//
// Files:
//   - discover.go: root precondition and the recursive candidate walk
//   - prompt.go:   the confirmation gate (line reader or --yes)
//   - runner.go:   Run and its phases, returning an explicit Outcome
//   - stats.go:    per-run counters
//
// All filesystem access goes through a billy.Filesystem so runs can be
// exercised against an in-memory tree.
package pipeline
