package naming

import "path/filepath"

// TargetPath returns the path a file is renamed to: newName in the same
// directory as oldPath. Renames never move files between directories.
//
//	TargetPath("json_files/a/Foo Bar.txt", "foo_bar.txt") -> "json_files/a/foo_bar.txt"
func TargetPath(oldPath, newName string) string {
	return filepath.Join(filepath.Dir(oldPath), newName)
}
