// Package manifest regenerates the preset file listing embedded in an HTML
// page. The listing is a JavaScript array literal delimited by marker
// comments:
//
//	const PRESET_JSON_FILES = [ // START-LIST
//	            { name: "clasificacion", path: "json_files/clasificacion.txt" }
//	        // END-LIST
//	        ];
//
// Everything between the markers is replaced by one entry per file found
// directly inside the root directory.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/backmassage/slugren/internal/naming"
)

// ErrMarkersNotFound is returned when the HTML has no START-LIST/END-LIST
// block for the configured variable.
var ErrMarkersNotFound = errors.New("manifest: START-LIST/END-LIST markers not found")

// Options configures listing and rendering.
type Options struct {
	Var            string // JS constant name, e.g. "PRESET_JSON_FILES".
	Extension      string // Files listed must carry it (case-insensitive).
	ReservedPrefix string // Hidden names are not listed.
}

// Item is one listed file.
type Item struct {
	Name string // Display label (bitrate tag and extension removed).
	Path string // Slash-separated path relative to the HTML file's directory.
}

// Result describes an update.
type Result struct {
	Items   []Item
	Changed bool // False when the rendered block already matched.
}

// blockPattern returns the regexp locating the list block for varName.
func blockPattern(varName string) *regexp.Regexp {
	return regexp.MustCompile(
		`const ` + regexp.QuoteMeta(varName) + `\s*=\s*\[\s*// START-LIST[\s\S]*?// END-LIST\s*\];`)
}

// List returns the items for files directly inside root, sorted by name.
// Paths are made relative to htmlDir.
func List(fsys billy.Filesystem, root, htmlDir string, opts Options) ([]Item, error) {
	infos, err := fsys.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", root, err)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name() < infos[j].Name() })

	var items []Item
	for _, fi := range infos {
		name := fi.Name()
		if fi.IsDir() || !strings.EqualFold(filepath.Ext(name), opts.Extension) {
			continue
		}
		if opts.ReservedPrefix != "" && strings.HasPrefix(name, opts.ReservedPrefix) {
			continue
		}
		rel, err := filepath.Rel(htmlDir, filepath.Join(root, name))
		if err != nil {
			rel = filepath.Join(root, name)
		}
		items = append(items, Item{
			Name: naming.DisplayName(name, opts.Extension),
			Path: filepath.ToSlash(rel),
		})
	}
	return items, nil
}

// Render builds the replacement block for items.
func Render(varName string, items []Item) (string, error) {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		name, err := json.Marshal(it.Name)
		if err != nil {
			return "", fmt.Errorf("manifest: encode name: %w", err)
		}
		path, err := json.Marshal(it.Path)
		if err != nil {
			return "", fmt.Errorf("manifest: encode path: %w", err)
		}
		lines = append(lines, fmt.Sprintf("            { name: %s, path: %s }", name, path))
	}

	var b strings.Builder
	b.WriteString("const " + varName + " = [ // START-LIST\n")
	if len(lines) > 0 {
		b.WriteString(strings.Join(lines, ",\n"))
		b.WriteString("\n")
	}
	b.WriteString("        // END-LIST\n        ];")
	return b.String(), nil
}

// Apply replaces the list block inside html.
func Apply(html, varName string, items []Item) (string, error) {
	re := blockPattern(varName)
	loc := re.FindStringIndex(html)
	if loc == nil {
		return "", ErrMarkersNotFound
	}
	block, err := Render(varName, items)
	if err != nil {
		return "", err
	}
	return html[:loc[0]] + block + html[loc[1]:], nil
}

// HasMarkers reports whether html contains a list block for varName.
func HasMarkers(html, varName string) bool {
	return blockPattern(varName).MatchString(html)
}

// Plan computes the update without writing: the items and the new HTML.
func Plan(fsys billy.Filesystem, htmlPath, root string, opts Options) (Result, string, error) {
	raw, err := util.ReadFile(fsys, htmlPath)
	if err != nil {
		return Result{}, "", fmt.Errorf("manifest: read %s: %w", htmlPath, err)
	}
	items, err := List(fsys, root, filepath.Dir(htmlPath), opts)
	if err != nil {
		return Result{}, "", err
	}
	updated, err := Apply(string(raw), opts.Var, items)
	if err != nil {
		return Result{}, "", fmt.Errorf("%w in %s", err, htmlPath)
	}
	return Result{Items: items, Changed: updated != string(raw)}, updated, nil
}

// Update rewrites the list block in htmlPath with the files currently in
// root. The file is left untouched when nothing changed.
func Update(fsys billy.Filesystem, htmlPath, root string, opts Options) (Result, error) {
	res, updated, err := Plan(fsys, htmlPath, root, opts)
	if err != nil {
		return Result{}, err
	}
	if !res.Changed {
		return res, nil
	}
	perm := filePerm(fsys, htmlPath)
	if err := util.WriteFile(fsys, htmlPath, []byte(updated), perm); err != nil {
		return Result{}, fmt.Errorf("manifest: write %s: %w", htmlPath, err)
	}
	return res, nil
}

func filePerm(fsys billy.Filesystem, path string) os.FileMode {
	if fi, err := fsys.Stat(path); err == nil {
		return fi.Mode().Perm()
	}
	return 0o644
}
