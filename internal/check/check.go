// Package check provides read-only diagnostics (--check mode): it reports
// whether the root directory is usable, how many candidates would be renamed,
// which targets collide, and whether the manifest markers are in place.
package check

import (
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/backmassage/slugren/internal/config"
	"github.com/backmassage/slugren/internal/display"
	"github.com/backmassage/slugren/internal/manifest"
	"github.com/backmassage/slugren/internal/pipeline"
	"github.com/backmassage/slugren/internal/planner"
	"github.com/backmassage/slugren/internal/term"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains testable with a recording logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs every diagnostic and never modifies fsys. It returns false
// when a check failed hard enough that a real run would not succeed.
func RunCheck(cfg *config.Config, fsys billy.Filesystem, log Logger) bool {
	log.Info("=== System Check ===")

	ok := checkRoot(cfg, fsys, log)
	if ok {
		checkPlan(cfg, fsys, log)
	}
	if !checkManifest(cfg, fsys, log) {
		ok = false
	}
	checkConsole(cfg, log)
	return ok
}

// checkRoot verifies the root directory precondition.
func checkRoot(cfg *config.Config, fsys billy.Filesystem, log Logger) bool {
	if err := pipeline.CheckRoot(fsys, cfg.RootDir); err != nil {
		log.Error("Root: %v", err)
		return false
	}
	log.Success("Root: %s", display.RelPath(cfg.WorkDir, cfg.RootDir))
	return true
}

// checkPlan reports candidate and pending-rename counts plus collisions.
func checkPlan(cfg *config.Config, fsys billy.Filesystem, log Logger) {
	files, err := pipeline.Discover(fsys, cfg.RootDir, pipeline.DiscoverOptions{
		Extension:      cfg.Extension,
		ReservedPrefix: cfg.ReservedPrefix,
		OnSkip: func(path string, err error) {
			log.Warn("Unreadable: %s (%v)", display.RelPath(cfg.WorkDir, path), err)
		},
	})
	if err != nil {
		log.Warn("Could not scan root: %v", err)
		return
	}
	plan := planner.Build(files)

	log.Info("Candidates: %s", display.Plural(len(files), cfg.Extension+" file", cfg.Extension+" files"))
	if plan.Empty() {
		log.Success("Pending renames: none")
	} else {
		log.Info("Pending renames: %d", plan.Len())
	}
	for _, e := range plan.Entries {
		log.Debug(cfg.Verbose, "  %s -> %s", display.RelPath(cfg.WorkDir, e.OldPath), e.NewName)
	}
	for _, target := range plan.ConflictTargets {
		log.Warn("Collision: %d files map to %s",
			len(plan.Conflicts[target]), display.RelPath(cfg.WorkDir, target))
	}
}

// checkManifest confirms the HTML file is readable and carries the markers.
func checkManifest(cfg *config.Config, fsys billy.Filesystem, log Logger) bool {
	if cfg.ManifestFile == "" {
		log.Info("Manifest: not configured")
		return true
	}
	label := display.RelPath(cfg.WorkDir, cfg.ManifestFile)
	b, err := util.ReadFile(fsys, cfg.ManifestFile)
	if err != nil {
		log.Error("Manifest: cannot read %s: %v", label, err)
		return false
	}
	if !manifest.HasMarkers(string(b), cfg.ManifestVar) {
		log.Error("Manifest: %s has no START-LIST/END-LIST block for %s", label, cfg.ManifestVar)
		return false
	}
	log.Success("Manifest: %s (%s)", label, cfg.ManifestVar)
	return true
}

// checkConsole reports prompt and color state.
func checkConsole(cfg *config.Config, log Logger) {
	if cfg.AssumeYes {
		log.Info("Confirmation: skipped (--yes)")
	} else if term.IsTerminal(os.Stdin) {
		log.Info("Confirmation: interactive, token %q", cfg.ConfirmToken)
	} else {
		log.Warn("Confirmation: stdin is not a terminal; pass --yes to run unattended")
	}
	log.Info("Colors: %s (enabled: %t)", cfg.ColorMode, term.Enabled())
	if cfg.LogFile != "" {
		log.Info("Log file: %s", cfg.LogFile)
	}
}
