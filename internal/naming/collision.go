package naming

import (
	"sort"
	"sync"
)

// ClaimTracker records which source paths claim each target path within one
// rename plan. Unlike a resolver it never invents alternative names: the
// first claimant keeps the target and later ones are reported as conflicts,
// leaving the existence check at rename time to skip them. All methods are
// goroutine-safe.
type ClaimTracker struct {
	mu     sync.Mutex
	owners map[string][]string // target path → source paths in claim order
}

// NewClaimTracker creates a ready-to-use tracker.
func NewClaimTracker() *ClaimTracker {
	return &ClaimTracker{owners: make(map[string][]string)}
}

// Claim registers source as wanting target and reports whether source is
// the first (winning) claimant. Re-claiming by the same source is a no-op.
func (ct *ClaimTracker) Claim(source, target string) bool {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	owners := ct.owners[target]
	for i, o := range owners {
		if o == source {
			return i == 0
		}
	}
	ct.owners[target] = append(owners, source)
	return len(owners) == 0
}

// Owner returns the first claimant of target.
func (ct *ClaimTracker) Owner(target string) (string, bool) {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	owners := ct.owners[target]
	if len(owners) == 0 {
		return "", false
	}
	return owners[0], true
}

// Conflicts returns every target claimed by more than one source, with its
// claimants in claim order. Targets are sorted for stable reporting.
func (ct *ClaimTracker) Conflicts() map[string][]string {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	out := make(map[string][]string)
	for target, owners := range ct.owners {
		if len(owners) > 1 {
			out[target] = append([]string(nil), owners...)
		}
	}
	return out
}

// ConflictTargets returns the keys of [ClaimTracker.Conflicts] sorted.
func (ct *ClaimTracker) ConflictTargets() []string {
	conflicts := ct.Conflicts()
	targets := make([]string, 0, len(conflicts))
	for t := range conflicts {
		targets = append(targets, t)
	}
	sort.Strings(targets)
	return targets
}
