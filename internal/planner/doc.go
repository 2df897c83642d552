// Package planner turns a list of candidate files into a rename [Plan].
//
// A plan is computed once per run and is never persisted: [Build] slugifies
// each basename, keeps only files whose name changes, and records targets
// claimed by more than one source so the pipeline can warn before asking
// for confirmation.
package planner
