package source

import (
	"os"
	"path/filepath"
	"strings"
)

// ScanDir walks dir and returns every worksheet (*.toml) beneath it, sorted
// by path. A missing directory yields no files and no error.
func ScanDir(dir string) ([]DiscoveredFile, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}

	var files []DiscoveredFile

	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // intentionally skip unreadable entries
		}
		if d.IsDir() || filepath.Ext(path) != ".toml" {
			return nil
		}

		rel, _ := filepath.Rel(dir, path)
		files = append(files, DiscoveredFile{
			Path: path,
			Name: filepath.ToSlash(strings.TrimSuffix(rel, ".toml")),
		})
		return nil
	})

	return files, err
}

// Resolve maps a worksheet argument to a file path. Anything that looks like
// a path is returned as-is; a bare name resolves to <dir>/<name>.toml.
func Resolve(arg, dir string) string {
	if arg == "" {
		return ""
	}
	if strings.ContainsRune(arg, os.PathSeparator) || strings.Contains(arg, "/") ||
		filepath.Ext(arg) == ".toml" {
		return arg
	}
	return filepath.Join(dir, arg+".toml")
}
