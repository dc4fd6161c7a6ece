// Package scan discovers WhatsApp export files on disk.
package scan

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

type Export struct {
	Path  string
	Mtime time.Time
	Size  int64
}

// Exports walks dir for .txt files, newest first. Hidden directories
// are skipped; unreadable entries are ignored rather than fatal.
func Exports(dir string) ([]Export, error) {
	var exports []Export

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip unreadable dirs
		}
		if info.IsDir() {
			base := filepath.Base(path)
			if path != dir && strings.HasPrefix(base, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(strings.ToLower(path), ".txt") {
			return nil
		}
		exports = append(exports, Export{
			Path:  path,
			Mtime: info.ModTime(),
			Size:  info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(exports, func(i, j int) bool {
		return exports[i].Mtime.After(exports[j].Mtime)
	})
	return exports, nil
}

// Newest returns the most recently modified export under dir, or ""
// when none exist.
func Newest(dir string) (string, error) {
	exports, err := Exports(dir)
	if err != nil {
		return "", err
	}
	if len(exports) == 0 {
		return "", nil
	}
	return exports[0].Path, nil
}
