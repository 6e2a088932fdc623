package util

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Files lists every regular file directly inside dir. Subdirectories are
// not descended into; source layouts are flat folders.
func Files(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}

// Filename extracts the base name of a path without its extension.
func Filename(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Ext appends an extension to a filename.
func Ext(filename, extension string) string {
	return filename + "." + extension
}

// Capitalize uppercases the first rune and lowercases the rest,
// matching how category and index names are displayed.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
