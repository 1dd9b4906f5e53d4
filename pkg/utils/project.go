package utils

import (
	"os"
	"path/filepath"
)

// projectMarkers are files whose presence identifies a Python project
// root.
var projectMarkers = []string{"pyproject.toml", "setup.py", "setup.cfg", ".git"}

// FindProjectRoot walks up from the given path looking for a Python
// project marker and returns the directory containing it. When no
// marker is found the starting directory is returned, so config
// discovery still has an anchor.
func FindProjectRoot(path string) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}

	dir := absPath
	if info, err := os.Stat(absPath); err != nil || !info.IsDir() {
		dir = filepath.Dir(absPath)
	}
	start := dir

	maxIterations := 20 // Prevent infinite loop
	for i := 0; i < maxIterations; i++ {
		for _, marker := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return start
}
