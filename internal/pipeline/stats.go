package pipeline

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total   int // Candidate files discovered.
	Planned int // Entries in the rename plan.
	Current int // Entry being executed (1-based).
	Renamed int
	Skipped int // Destination already existed.
	Failed  int
}

// Unchanged returns how many candidates already had canonical names.
func (s *RunStats) Unchanged() int {
	return s.Total - s.Planned
}
