package planner

import (
	"path/filepath"

	"github.com/backmassage/slugren/internal/naming"
)

// Build produces the rename plan for paths, preserving their order. Files
// whose slug equals their current name produce no entry.
//
// Flow per path:
//  1. Slugify the basename (extension untouched)
//  2. Skip when unchanged
//  3. Build the sibling target path and record the claim
func Build(paths []string) *Plan {
	plan := &Plan{Candidates: len(paths)}
	claims := naming.NewClaimTracker()

	for _, p := range paths {
		oldName := filepath.Base(p)
		newName := naming.Slugify(oldName)
		if newName == oldName {
			// Already canonical; still owns its own name for conflict purposes.
			claims.Claim(p, p)
			continue
		}
		newPath := naming.TargetPath(p, newName)
		claims.Claim(p, newPath)
		plan.Entries = append(plan.Entries, Entry{
			OldPath: p,
			NewPath: newPath,
			OldName: oldName,
			NewName: newName,
		})
	}

	plan.Conflicts = claims.Conflicts()
	plan.ConflictTargets = claims.ConflictTargets()
	return plan
}
