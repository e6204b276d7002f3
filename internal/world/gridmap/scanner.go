package gridmap

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LevelEntry is a level file discovered in a data directory.
type LevelEntry struct {
	Name string // File name without extension
	Path string // Path including the data directory
}

// ScanDir lists the JSON level files in dataPath, sorted by name.
// Subdirectories and hidden files are skipped.
func ScanDir(dataPath string) ([]LevelEntry, error) {
	entries, err := os.ReadDir(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	var levels []LevelEntry
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if !strings.EqualFold(filepath.Ext(name), ".json") {
			continue
		}
		levels = append(levels, LevelEntry{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: filepath.Join(dataPath, name),
		})
	}

	sort.Slice(levels, func(i, j int) bool { return levels[i].Name < levels[j].Name })
	return levels, nil
}

// PrintLevels writes one line per level found in dataPath to w.
func PrintLevels(w io.Writer, dataPath string) error {
	levels, err := ScanDir(dataPath)
	if err != nil {
		return err
	}
	if len(levels) == 0 {
		_, err := fmt.Fprintf(w, "No levels in %s\n", dataPath)
		return err
	}
	for _, l := range levels {
		if _, err := fmt.Fprintf(w, "%-20s %s\n", l.Name, l.Path); err != nil {
			return err
		}
	}
	return nil
}
