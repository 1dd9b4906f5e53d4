package utils

import (
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
)

// EnvDirs lists conventional Python dependency-environment directory
// names excluded from discovery.
var EnvDirs = []string{"venv", ".venv", "env", ".env", "__pypackages__", "envs", ".virtualenvs"}

// DiscoveryOptions controls which paths FindPythonFiles excludes.
type DiscoveryOptions struct {
	UseGitignore     bool     // honor <root>/.gitignore rules when the file exists
	ExtraExcludeDirs []string // additional directory names to skip
}

// IsPythonFile checks if a file is a Python source file
func IsPythonFile(filename string) bool {
	return strings.HasSuffix(filename, ".py")
}

// FindPythonFiles recursively finds all Python source files in a
// directory, skipping dependency-environment directories and hidden
// directories, and optionally paths matched by the root .gitignore.
// Discovery completes before any file is processed.
func FindPythonFiles(root string, opts DiscoveryOptions) ([]string, error) {
	excluded := make(map[string]bool, len(EnvDirs)+len(opts.ExtraExcludeDirs))
	for _, name := range EnvDirs {
		excluded[name] = true
	}
	for _, name := range opts.ExtraExcludeDirs {
		excluded[name] = true
	}

	var matcher *gitignore.GitIgnore
	if opts.UseGitignore {
		// A missing or unreadable .gitignore disables rule matching.
		if gi, err := gitignore.CompileIgnoreFile(filepath.Join(root, ".gitignore")); err == nil {
			matcher = gi
		}
	}

	var pyFiles []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip environment directories and hidden directories (but not the root directory)
		if info.IsDir() && path != root {
			name := filepath.Base(path)
			if excluded[name] || name == ".git" || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !IsPythonFile(filepath.Base(path)) {
			return nil
		}

		if matcher != nil {
			if rel, relErr := filepath.Rel(root, path); relErr == nil && matcher.MatchesPath(rel) {
				return nil
			}
		}

		pyFiles = append(pyFiles, path)
		return nil
	})

	return pyFiles, err
}

// IsDirectory checks if the given path is a directory
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
