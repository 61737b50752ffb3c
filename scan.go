package sniffkit

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/gobwas/glob"
)

// ScanResult pairs a scanned path with its detection outcome. Err is set
// when the file vanished or stopped being a regular file mid-scan; the
// scan itself never aborts because of a single bad file.
type ScanResult struct {
	Path   string
	Result *Result
	Err    error
}

// ScanDir classifies files under dir using the default detector.
func ScanDir(dir, pattern string, recursive bool) ([]ScanResult, error) {
	return Default().ScanDir(dir, pattern, recursive)
}

// ScanDir walks dir and classifies every regular file whose base name
// matches pattern. An empty pattern matches everything. Supports glob
// syntax: *, ?, [abc], {alt1,alt2}.
func (d *Detector) ScanDir(dir, pattern string, recursive bool) ([]ScanResult, error) {
	var matcher glob.Glob
	if pattern != "" {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		matcher = g
	}

	var results []ScanResult
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if !recursive && path != dir {
				return fs.SkipDir
			}
			return nil
		}
		if matcher != nil && !matcher.Match(entry.Name()) {
			return nil
		}

		res, derr := d.Detect(path)
		results = append(results, ScanResult{Path: path, Result: res, Err: derr})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}
