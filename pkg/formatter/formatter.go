package formatter

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"

	"github.com/siyuan-infoblox/py-imports-group/pkg/config"
	"github.com/siyuan-infoblox/py-imports-group/pkg/errors"
	"github.com/siyuan-infoblox/py-imports-group/pkg/utils"
)

var (
	updatedColor   = color.New(color.FgGreen)
	unchangedColor = color.New(color.FgYellow)
)

// Config controls how files are discovered and rewritten.
type Config struct {
	Threads          int      // worker-pool size for directory runs
	Backup           bool     // copy modified files into a temp-dir backup first
	UseGitignore     bool     // honor .gitignore rules under the root
	ExtraStdModules  []string // additional module roots treated as standard library
	ExtraExcludeDirs []string // additional directory names skipped during discovery
}

// Outcome is the per-file result of one rewrite attempt. Workers fill
// outcomes by index; there is no shared mutable state between them.
type Outcome struct {
	Path     string
	Modified bool
	Backup   string // path of the backup copy, if one was written
}

// Formatter rewrites the import sections of Python source files.
type Formatter struct {
	config     Config
	classifier *Classifier
}

// New creates a new Formatter with the given configuration
func New(cfg Config) *Formatter {
	if cfg.Threads <= 0 {
		cfg.Threads = config.DefaultThreads
	}
	return &Formatter{
		config:     cfg,
		classifier: NewClassifier(cfg.ExtraStdModules),
	}
}

// ProcessFile reads one file, rewrites its import blocks, and writes
// the file back only when the content actually changed. The backup
// copy, when enabled, is written before the rewrite and is
// best-effort: a failed backup does not block the rewrite.
func (f *Formatter) ProcessFile(path string) (Outcome, error) {
	out := Outcome{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return out, fmt.Errorf("%s %s: %w", errors.ErrMsgFailedToReadFile, path, err)
	}

	content := string(data)
	rewritten := f.classifier.Rewrite(content)
	if rewritten == content {
		return out, nil
	}

	if f.config.Backup {
		bak, err := utils.BackupFile(path)
		if err != nil {
			fmt.Printf(errors.WarnMsgBackupFailed+"\n", path, err)
		} else {
			out.Backup = bak
		}
	}

	if err := os.WriteFile(path, []byte(rewritten), 0644); err != nil {
		return out, fmt.Errorf("%s %s: %w", errors.ErrMsgFailedToWriteFile, path, err)
	}

	out.Modified = true
	return out, nil
}

// ProcessFiles rewrites the given files on a fixed-size worker pool.
// One file is one unit of work; outcomes land at the file's index. The
// first error cancels the remaining work and becomes the run's error.
func (f *Formatter) ProcessFiles(ctx context.Context, paths []string) ([]Outcome, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	outcomes := make([]Outcome, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(f.config.Threads, len(paths)))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			fmt.Printf(errors.InfoMsgProcessing+"\n", path)

			out, err := f.ProcessFile(path)
			if err != nil {
				return err
			}
			outcomes[i] = out

			if out.Modified {
				updatedColor.Printf(errors.InfoMsgUpdated+"\n", path)
			} else {
				unchangedColor.Printf(errors.InfoMsgNoChanges+"\n", path)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return outcomes, err
	}

	return outcomes, nil
}

// ProcessPath processes a file or directory path. For directories,
// discovery runs to completion before the parallel phase starts, and a
// list of modified files is printed once all work is done.
func (f *Formatter) ProcessPath(ctx context.Context, path string) error {
	isDir, err := utils.IsDirectory(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
	}

	var files []string
	if isDir {
		files, err = utils.FindPythonFiles(path, utils.DiscoveryOptions{
			UseGitignore:     f.config.UseGitignore,
			ExtraExcludeDirs: f.config.ExtraExcludeDirs,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", errors.ErrMsgFailedToFindPyFiles, err)
		}

		if len(files) == 0 {
			fmt.Printf(errors.InfoMsgNoPyFilesFound+"\n", path)
			return nil
		}

		fmt.Printf(errors.InfoMsgFoundPyFiles+"\n", len(files), path)
		fmt.Println()
	} else {
		if !utils.IsPythonFile(path) {
			fmt.Printf(errors.InfoMsgNotAPythonFile+"\n", path)
			return nil
		}
		files = []string{path}
	}

	outcomes, err := f.ProcessFiles(ctx, files)
	if err != nil {
		return err
	}

	fmt.Println(errors.InfoMsgModifiedFiles)
	for _, out := range outcomes {
		if out.Modified {
			updatedColor.Printf(errors.InfoMsgModifiedEntry+"\n", out.Path)
		}
	}

	return nil
}
