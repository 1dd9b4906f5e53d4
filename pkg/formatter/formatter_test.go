package formatter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestProcessFile_RewritesUnsortedImports(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "app.py", "import sys\nfrom __future__ import annotations\nimport numpy\n\nprint(1)\n")

	f := New(Config{})
	out, err := f.ProcessFile(path)
	req.NoError(err)
	req.True(out.Modified)
	req.Equal(path, out.Path)
	req.Empty(out.Backup)

	req.Equal("from __future__ import annotations\n\nimport sys\n\nimport numpy\n\n\nprint(1)", readFile(t, path))
}

func TestProcessFile_SecondRunIsNoOp(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "app.py", "import sys\nimport os\nmain()\n")

	f := New(Config{})
	out, err := f.ProcessFile(path)
	req.NoError(err)
	req.True(out.Modified)

	first := readFile(t, path)

	out, err = f.ProcessFile(path)
	req.NoError(err)
	req.False(out.Modified)
	req.Equal(first, readFile(t, path))
}

func TestProcessFile_NoImportsLeavesFileAlone(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	content := "x = 1\nprint(x)\n"
	path := writeFile(t, dir, "plain.py", content)

	f := New(Config{Backup: true})
	out, err := f.ProcessFile(path)
	req.NoError(err)
	req.False(out.Modified)
	req.Empty(out.Backup, "no backup may be written for an unchanged file")
	req.Equal(content, readFile(t, path))
}

func TestProcessFile_WritesBackupBeforeRewrite(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	original := "import sys\nimport os\nmain()\n"
	path := writeFile(t, dir, "app.py", original)

	f := New(Config{Backup: true})
	out, err := f.ProcessFile(path)
	req.NoError(err)
	req.True(out.Modified)
	req.NotEmpty(out.Backup)
	t.Cleanup(func() { _ = os.Remove(out.Backup) })

	req.Equal(original, readFile(t, out.Backup), "backup must hold the pre-rewrite content")
}

func TestProcessFile_ReadError(t *testing.T) {
	req := require.New(t)

	f := New(Config{})
	_, err := f.ProcessFile(filepath.Join(t.TempDir(), "missing.py"))
	req.Error(err)
	req.Contains(err.Error(), "failed to read file")
}

func TestProcessFiles_ParallelOutcomesKeepFileOrder(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	var paths []string
	paths = append(paths, writeFile(t, dir, "a.py", "import sys\nimport os\nmain()\n"))
	paths = append(paths, writeFile(t, dir, "b.py", "x = 1\n"))
	paths = append(paths, writeFile(t, dir, "c.py", "import numpy\nimport flask\nrun()\n"))

	f := New(Config{Threads: 4})
	outcomes, err := f.ProcessFiles(context.Background(), paths)
	req.NoError(err)
	req.Len(outcomes, len(paths))

	req.Equal(paths[0], outcomes[0].Path)
	req.True(outcomes[0].Modified)
	req.False(outcomes[1].Modified)
	req.True(outcomes[2].Modified)

	req.Equal("import flask\nimport numpy\n\n\nrun()", readFile(t, paths[2]))
}

func TestProcessFiles_FirstErrorAbortsRun(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	paths := []string{
		writeFile(t, dir, "ok.py", "import sys\nimport os\n"),
		filepath.Join(dir, "missing.py"),
	}

	f := New(Config{Threads: 1})
	_, err := f.ProcessFiles(context.Background(), paths)
	req.Error(err)
}

func TestProcessFiles_EmptyList(t *testing.T) {
	req := require.New(t)

	f := New(Config{})
	outcomes, err := f.ProcessFiles(context.Background(), nil)
	req.NoError(err)
	req.Empty(outcomes)
}

func TestProcessPath_DirectorySkipsEnvDirs(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	kept := writeFile(t, dir, "pkg/app.py", "import sys\nimport os\nmain()\n")
	skipped := writeFile(t, dir, "venv/lib/site.py", "import sys\nimport os\n")

	f := New(Config{Threads: 2})
	req.NoError(f.ProcessPath(context.Background(), dir))

	req.Equal("import os\nimport sys\n\n\nmain()", readFile(t, kept))
	req.Equal("import sys\nimport os\n", readFile(t, skipped), "files under venv must not be touched")
}

func TestProcessPath_SingleNonPythonFile(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	content := "import sys\nimport os\n"
	path := writeFile(t, dir, "notes.txt", content)

	f := New(Config{})
	req.NoError(f.ProcessPath(context.Background(), path))
	req.Equal(content, readFile(t, path))
}

func TestProcessPath_MissingPath(t *testing.T) {
	req := require.New(t)

	f := New(Config{})
	err := f.ProcessPath(context.Background(), filepath.Join(t.TempDir(), "nope"))
	req.Error(err)
	req.Contains(err.Error(), "failed to check path")
}
