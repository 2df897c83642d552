package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"

	"github.com/backmassage/slugren/internal/config"
	"github.com/backmassage/slugren/internal/display"
	"github.com/backmassage/slugren/internal/logging"
	"github.com/backmassage/slugren/internal/manifest"
	"github.com/backmassage/slugren/internal/planner"
)

// Outcome is the terminal state of a run. The caller decides the exit code.
type Outcome int

const (
	OutcomeDone        Outcome = iota // Plan executed (possibly with skips).
	OutcomeNothingToDo                // Every candidate already canonical.
	OutcomeCancelled                  // User declined; nothing touched.
	OutcomeRootMissing                // Precondition failed; nothing touched.
	OutcomeInterrupted                // Context cancelled between renames.
	OutcomeFailed                     // Unexpected error; see returned error.
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDone:
		return "done"
	case OutcomeNothingToDo:
		return "nothing to do"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeRootMissing:
		return "root missing"
	case OutcomeInterrupted:
		return "interrupted"
	case OutcomeFailed:
		return "failed"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Run is the top-level batch entry point:
// precondition → discover → plan → confirm → execute → summary → manifest.
// Each phase either continues or returns an explicit Outcome; only
// unexpected failures produce a non-nil error.
func Run(
	ctx context.Context,
	cfg *config.Config,
	fsys billy.Filesystem,
	prompt Prompter,
	log *logging.Logger,
) (Outcome, RunStats, error) {
	var stats RunStats

	// --- Precondition ---
	if err := CheckRoot(fsys, cfg.RootDir); err != nil {
		if errors.Is(err, ErrRootNotFound) || errors.Is(err, ErrRootNotDir) {
			log.Error("%v", err)
			return OutcomeRootMissing, stats, nil
		}
		return OutcomeFailed, stats, err
	}

	log.Info("Scanning %s for %s files in all subfolders", display.RelPath(cfg.WorkDir, cfg.RootDir), cfg.Extension)
	log.Blank()

	// --- Discover ---
	files, err := Discover(fsys, cfg.RootDir, DiscoverOptions{
		Extension:      cfg.Extension,
		ReservedPrefix: cfg.ReservedPrefix,
		OnSkip: func(path string, err error) {
			log.Warn("Cannot read %s, skipping: %v", display.RelPath(cfg.WorkDir, path), err)
		},
	})
	if err != nil {
		return OutcomeFailed, stats, err
	}
	stats.Total = len(files)
	log.Debug(cfg.Verbose, "Found %s", display.Plural(stats.Total, "candidate", "candidates"))

	// --- Plan ---
	plan := planner.Build(files)
	stats.Planned = plan.Len()

	if plan.Empty() {
		log.Success("No files need renaming. Everything is clean!")
		if err := updateManifest(cfg, fsys, log); err != nil {
			return OutcomeFailed, stats, err
		}
		return OutcomeNothingToDo, stats, nil
	}

	// --- Present & confirm ---
	present(cfg, log, plan)

	if !cfg.DryRun {
		ok, err := prompt.Confirm("Proceed with renaming?")
		if err != nil {
			return OutcomeFailed, stats, err
		}
		if !ok {
			log.Warn("Operation cancelled.")
			return OutcomeCancelled, stats, nil
		}
	}

	// --- Execute ---
	outcome, err := execute(ctx, cfg, fsys, log, plan, &stats)
	logSummary(cfg, log, &stats)
	if err != nil || outcome != OutcomeDone {
		return outcome, stats, err
	}

	if err := updateManifest(cfg, fsys, log); err != nil {
		return OutcomeFailed, stats, err
	}
	return OutcomeDone, stats, nil
}

// present prints every planned rename and warns about targets claimed by
// more than one source.
func present(cfg *config.Config, log *logging.Logger, plan *planner.Plan) {
	log.Info("The following %s will be renamed:", display.Plural(plan.Len(), "file", "files"))
	for _, e := range plan.Entries {
		lines := display.FormatRename(display.RelPath(cfg.WorkDir, e.OldPath), e.NewName)
		log.Info("%s", lines[0])
		log.Info("%s", lines[1])
	}
	log.Debug(cfg.Verbose, "%s already canonical", display.Plural(plan.Unchanged(), "file is", "files are"))

	for _, target := range plan.ConflictTargets {
		sources := plan.Conflicts[target]
		log.Warn("%d files map to %q; only the first can be renamed",
			len(sources), display.RelPath(cfg.WorkDir, target))
		for _, s := range sources {
			log.Debug(cfg.Verbose, "  %s", display.RelPath(cfg.WorkDir, s))
		}
	}
}

// execute applies the plan in order. An existing destination skips that
// entry; a failed rename aborts the batch without undoing earlier renames.
func execute(
	ctx context.Context,
	cfg *config.Config,
	fsys billy.Filesystem,
	log *logging.Logger,
	plan *planner.Plan,
	stats *RunStats,
) (Outcome, error) {
	log.Blank()
	if cfg.DryRun {
		log.Warn("DRY RUN - no files will be renamed")
	} else {
		log.Info("Renaming files...")
	}

	// Targets taken earlier in a dry run, since nothing is written to disk.
	simulated := make(map[string]bool)

	for i, e := range plan.Entries {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted")
			return OutcomeInterrupted, nil
		}

		exists, err := pathExists(fsys, e.NewPath)
		if err != nil {
			stats.Failed++
			return OutcomeFailed, err
		}
		if exists || simulated[e.NewPath] {
			log.Warn("%q already exists in the folder. Skipping rename of %q.",
				e.NewName, display.RelPath(cfg.WorkDir, e.OldPath))
			stats.Skipped++
			continue
		}

		if cfg.DryRun {
			simulated[e.NewPath] = true
			log.Success("[DRY] Would rename %q -> %q", e.OldName, e.NewName)
			stats.Renamed++
			continue
		}

		if err := fsys.Rename(e.OldPath, e.NewPath); err != nil {
			stats.Failed++
			return OutcomeFailed, fmt.Errorf("rename %s: %w", e.OldPath, err)
		}
		log.Debug(cfg.Verbose, "Renamed %q -> %q", e.OldName, e.NewName)
		stats.Renamed++
	}
	return OutcomeDone, nil
}

// pathExists reports whether something is already at path.
func pathExists(fsys billy.Filesystem, path string) (bool, error) {
	_, err := fsys.Lstat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
}

// updateManifest regenerates the HTML preset list when --manifest is set.
func updateManifest(cfg *config.Config, fsys billy.Filesystem, log *logging.Logger) error {
	if cfg.ManifestFile == "" {
		return nil
	}
	opts := manifest.Options{
		Var:            cfg.ManifestVar,
		Extension:      cfg.Extension,
		ReservedPrefix: cfg.ReservedPrefix,
	}
	htmlLabel := display.RelPath(cfg.WorkDir, cfg.ManifestFile)

	if cfg.DryRun {
		res, _, err := manifest.Plan(fsys, cfg.ManifestFile, cfg.RootDir, opts)
		if err != nil {
			return err
		}
		log.Info("[DRY] Would list %s in %s", display.Plural(len(res.Items), "file", "files"), htmlLabel)
		return nil
	}

	res, err := manifest.Update(fsys, cfg.ManifestFile, cfg.RootDir, opts)
	if err != nil {
		return err
	}
	if res.Changed {
		log.Success("Updated %s with %s", htmlLabel, display.Plural(len(res.Items), "file", "files"))
	} else {
		log.Info("%s already lists %s", htmlLabel, display.Plural(len(res.Items), "file", "files"))
	}
	return nil
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Blank()
	log.Info("==============================")
	log.Success("Done! %s.", display.FormatSummary(stats.Renamed, stats.Planned, cfg.DryRun))
	if stats.Skipped > 0 {
		log.Warn("  Skipped (destination exists): %d", stats.Skipped)
	}
	if stats.Failed > 0 {
		log.Error("  Failed: %d", stats.Failed)
	}
	log.Debug(cfg.Verbose, "  Candidates: %d, already canonical: %d", stats.Total, stats.Unchanged())
}
