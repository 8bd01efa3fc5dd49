package sysop

import (
	"fmt"
	"os"
	"path/filepath"

	"solarwin/internal/tweak"

	"github.com/charmbracelet/log"
)

// ClearDirectory deletes everything inside Dir and keeps Dir itself. Entries
// that cannot be removed (usually files held open by running programs) are
// skipped; only an unreadable Dir fails the operation.
type ClearDirectory struct {
	Dir    string
	Logger *log.Logger
}

func (c ClearDirectory) Name() string {
	return fmt.Sprintf("clear directory %s", c.Dir)
}

func (c ClearDirectory) Execute() error {
	if c.Dir == "" {
		return tweak.Failf(c.Name(), "no directory configured")
	}

	freed, deleted, skipped, err := cleanPath(c.Dir)
	if err != nil {
		return tweak.Fail(c.Name(), err)
	}

	if c.Logger != nil {
		c.Logger.Debug("directory cleared",
			"dir", c.Dir,
			"deleted", deleted,
			"skipped", len(skipped),
			"freed", formatBytes(freed))
		for _, s := range skipped {
			c.Logger.Debug("skipped entry", "entry", s)
		}
	}
	return nil
}

// cleanPath deletes all files and subdirectories within path. It returns the
// bytes freed, the number of files deleted and the entries it had to skip.
func cleanPath(path string) (int64, int, []string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("cannot access %s: %w", path, err)
	}
	if !info.IsDir() {
		return 0, 0, nil, fmt.Errorf("%s is not a directory", path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("cannot read directory %s: %w", path, err)
	}

	var freed int64
	var deleted int
	var skipped []string

	for _, entry := range entries {
		entryPath := filepath.Join(path, entry.Name())

		if entry.IsDir() {
			size, count := scanDirectory(entryPath)
			if err := os.RemoveAll(entryPath); err != nil {
				skipped = append(skipped, fmt.Sprintf("%s: %v", entryPath, err))
				continue
			}
			freed += size
			deleted += count
			continue
		}

		entryInfo, err := entry.Info()
		if err != nil {
			skipped = append(skipped, fmt.Sprintf("%s: %v", entryPath, err))
			continue
		}
		if err := os.Remove(entryPath); err != nil {
			skipped = append(skipped, fmt.Sprintf("%s: %v", entryPath, err))
			continue
		}
		freed += entryInfo.Size()
		deleted++
	}

	return freed, deleted, skipped, nil
}

// scanDirectory walks a directory and returns its total size and file count.
// Inaccessible entries are ignored.
func scanDirectory(path string) (int64, int) {
	var total int64
	var count int
	_ = filepath.Walk(path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			total += info.Size()
			count++
		}
		return nil
	})
	return total, count
}

func formatBytes(bytes int64) string {
	if bytes == 0 {
		return "0 B"
	}
	units := []string{"B", "KB", "MB", "GB", "TB"}
	b := float64(bytes)
	i := 0
	for b >= 1024 && i < len(units)-1 {
		b /= 1024
		i++
	}
	return fmt.Sprintf("%.1f %s", b, units[i])
}
