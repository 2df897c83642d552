// Command slugren is the CLI entrypoint for the batch filename normalizer.
//
// It parses flags, validates configuration, and either runs read-only
// diagnostics (--check) or the discover/plan/confirm/rename pipeline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/backmassage/slugren/internal/check"
	"github.com/backmassage/slugren/internal/config"
	"github.com/backmassage/slugren/internal/display"
	"github.com/backmassage/slugren/internal/logging"
	"github.com/backmassage/slugren/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "slugren: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "slugren: %v\n", err)
		return 1
	}
	if err := resolvePaths(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "slugren: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "slugren: %v\n", err)
		return 1
	}
	defer log.Close()

	// Anything unexpected is reported as one line, never a stack trace.
	defer func() {
		if r := recover(); r != nil {
			log.Error("Unexpected error: %v", r)
			code = 1
		}
	}()

	// Phase 2: Logger available.
	display.PrintBanner(log.Writer())
	log.Debug(cfg.Verbose, "slugren v%s (%s)", version, commit)

	// All paths are absolute from here on, so the whole tree is addressed
	// from the filesystem root.
	fsys := osfs.New("/")

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, fsys, log) {
			return 1
		}
		return 0
	}

	if cfg.DryRun {
		log.Warn("DRY RUN - nothing will be renamed")
	}

	// Phase 3: Signal handling. Cancellation is observed between renames so
	// no rename is ever left half done.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Received interrupt, stopping after the current file...")
			cancel()
		case <-ctx.Done():
		}
	}()

	var prompt pipeline.Prompter = pipeline.NewLinePrompter(os.Stdin, log.Writer(), cfg.ConfirmToken)
	if cfg.AssumeYes {
		prompt = pipeline.AlwaysConfirm{}
	}

	// Phase 4: Run pipeline (discover → plan → confirm → rename → manifest).
	outcome, _, err := pipeline.Run(ctx, &cfg, fsys, prompt, log)
	if err != nil {
		log.Error("Unexpected error: %v", err)
		return 1
	}
	log.Debug(cfg.Verbose, "Outcome: %s", outcome)

	switch outcome {
	case pipeline.OutcomeRootMissing, pipeline.OutcomeInterrupted, pipeline.OutcomeFailed:
		return 1
	}
	return 0
}

// resolvePaths records the working directory and makes the root and
// manifest paths absolute.
func resolvePaths(cfg *config.Config) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}
	cfg.WorkDir = wd

	if cfg.RootDir, err = filepath.Abs(cfg.RootDir); err != nil {
		return fmt.Errorf("resolve root %s: %w", cfg.RootDir, err)
	}
	if cfg.ManifestFile != "" {
		if cfg.ManifestFile, err = filepath.Abs(cfg.ManifestFile); err != nil {
			return fmt.Errorf("resolve manifest %s: %w", cfg.ManifestFile, err)
		}
	}
	return nil
}
