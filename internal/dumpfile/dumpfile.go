// Package dumpfile resolves the CLI's "-o" output routing: a path naming an
// existing directory gets a timestamped file created inside it, per §4.7.
// This is the one place in the repository that reads the wall clock.
package dumpfile

import (
	"os"
	"path/filepath"
	"time"
)

// Resolve returns the path a dump should be written to. If out names an
// existing directory, the result is out/YYYYMMDD_HHMMSS_hid.txt; otherwise
// out is returned unchanged (including the empty string, meaning stdout).
func Resolve(out string) string {
	if out == "" {
		return out
	}
	info, err := os.Stat(out)
	if err != nil || !info.IsDir() {
		return out
	}
	name := time.Now().Format("20060102_150405") + "_hid.txt"
	return filepath.Join(out, name)
}
