package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// Precondition errors returned by [CheckRoot].
var (
	ErrRootNotFound = errors.New("root directory not found")
	ErrRootNotDir   = errors.New("root path is not a directory")
)

// DiscoverOptions selects which files are rename candidates.
type DiscoverOptions struct {
	Extension      string // Required extension with leading dot; matched case-insensitively.
	ReservedPrefix string // Names starting with it are hidden; empty disables hiding.

	// OnSkip is called for every entry below the root that could not be
	// read. The entry is skipped and the walk continues. May be nil.
	OnSkip func(path string, err error)
}

// maxRootLinks bounds symlink resolution of the root.
const maxRootLinks = 40

// CheckRoot verifies that root exists on fsys and is a directory.
func CheckRoot(fsys billy.Filesystem, root string) error {
	fi, err := fsys.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return fmt.Errorf("stat root %s: %w", root, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrRootNotDir, root)
	}
	return nil
}

// Discover walks root on fsys and returns candidate file paths sorted
// lexicographically. Directories below root whose name starts with the
// reserved prefix are pruned; files are kept only when they carry the
// extension and are not hidden themselves.
//
// A symlinked root is followed; returned paths stay under root as given.
// Unreadable entries below root are reported to opts.OnSkip and skipped.
func Discover(fsys billy.Filesystem, root string, opts DiscoverOptions) ([]string, error) {
	walkRoot, err := resolveRoot(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("discover %s: %w", root, err)
	}

	var files []string
	err = util.Walk(fsys, walkRoot, func(path string, info os.FileInfo, err error) error {
		if info != nil && info.IsDir() && path != walkRoot && opts.isHidden(info.Name()) {
			return filepath.SkipDir
		}
		if err != nil {
			if path == walkRoot {
				return err
			}
			if opts.OnSkip != nil {
				opts.OnSkip(underRoot(root, walkRoot, path), err)
			}
			if info != nil && !info.IsDir() {
				return nil
			}
			return filepath.SkipDir
		}
		if info.IsDir() {
			return nil
		}
		if opts.IsCandidate(info.Name()) {
			files = append(files, underRoot(root, walkRoot, path))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover %s: %w", root, err)
	}
	sort.Strings(files)
	return files, nil
}

// resolveRoot follows root while it is a symlink and returns the directory
// to walk. util.Walk uses Lstat, so a linked root would otherwise be seen
// as a single non-directory entry.
func resolveRoot(fsys billy.Filesystem, root string) (string, error) {
	path := root
	for i := 0; i < maxRootLinks; i++ {
		fi, err := fsys.Lstat(path)
		if err != nil {
			return "", err
		}
		if fi.Mode()&os.ModeSymlink == 0 {
			return path, nil
		}
		target, err := fsys.Readlink(path)
		if err != nil {
			return "", err
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(path), target)
		}
		path = target
	}
	return "", fmt.Errorf("too many symlinks resolving %s", root)
}

// underRoot maps a path found below walkRoot back below root.
func underRoot(root, walkRoot, path string) string {
	if root == walkRoot {
		return path
	}
	rel, err := filepath.Rel(walkRoot, path)
	if err != nil {
		return path
	}
	return filepath.Join(root, rel)
}

// IsCandidate reports whether a file name qualifies for renaming.
func (o DiscoverOptions) IsCandidate(name string) bool {
	if o.isHidden(name) {
		return false
	}
	return strings.EqualFold(filepath.Ext(name), o.Extension)
}

func (o DiscoverOptions) isHidden(name string) bool {
	return o.ReservedPrefix != "" && strings.HasPrefix(name, o.ReservedPrefix)
}
