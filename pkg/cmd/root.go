package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/siyuan-infoblox/py-imports-group/pkg/config"
	"github.com/siyuan-infoblox/py-imports-group/pkg/errors"
	"github.com/siyuan-infoblox/py-imports-group/pkg/formatter"
	"github.com/siyuan-infoblox/py-imports-group/pkg/utils"
	"github.com/siyuan-infoblox/py-imports-group/pkg/version"
)

const (
	UseDescription   = "pig [flags] PATH"
	ShortDescription = "Python imports grouper - A tool to group and sort Python imports"
	LongDescription  = `pig is a command-line tool that groups and sorts Python imports.

It organizes each import block into groups:
1. __future__ imports
2. Standard library
3. Third-party packages
4. Local (relative) imports

Within a group, "import X" lines sort before "from X import Y" lines,
then case-insensitively by the full line.

PATH can be either a single Python file or a directory. When a directory is
specified, all Python source files in the directory and subdirectories will be
processed recursively on a fixed-size worker pool, skipping virtual-environment
directories and paths excluded by .gitignore. Settings can also come from an
optional .pig.yaml at the project root; explicit flags win.`
)

var (
	threads     int
	backup      bool
	noGitignore bool
	showVersion bool
	versionStr  string
)

var rootCmd = &cobra.Command{
	Use:          UseDescription,
	Short:        ShortDescription,
	Long:         LongDescription,
	Args:         validateArgs,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&threads, "threads", "t", config.DefaultThreads, "Number of worker threads for parallel processing")
	rootCmd.PersistentFlags().BoolVar(&backup, "backup", false, "Write a timestamped backup copy of each modified file to the system temp directory")
	rootCmd.PersistentFlags().BoolVar(&noGitignore, "no-gitignore", false, "Do not exclude paths matched by the root .gitignore")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
}

func validateArgs(cmd *cobra.Command, args []string) error {
	// If version flag is set, we don't need file arguments
	if showVersion {
		return nil
	}
	return cobra.ExactArgs(1)(cmd, args)
}

func run(cmd *cobra.Command, args []string) error {
	// Handle version flag
	if showVersion {
		info := version.Get()
		if info.Version == "dev" && versionStr != "" {
			info.Version = versionStr
		}
		fmt.Println(info.String())
		return nil
	}

	path := args[0]

	cfg, err := config.Load(utils.FindProjectRoot(path))
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToLoadConfig, err)
	}

	if !cmd.Flags().Changed("threads") {
		threads = cfg.Threads
	}
	if !cmd.Flags().Changed("backup") {
		backup = cfg.Backup
	}
	if threads < 1 {
		return fmt.Errorf(errors.ErrMsgInvalidThreadCount, threads)
	}

	f := formatter.New(formatter.Config{
		Threads:          threads,
		Backup:           backup,
		UseGitignore:     cfg.Gitignore && !noGitignore,
		ExtraStdModules:  cfg.StdModules,
		ExtraExcludeDirs: cfg.ExcludeDirs,
	})
	return f.ProcessPath(cmd.Context(), path)
}

func Execute(version string) error {
	versionStr = version
	return rootCmd.Execute()
}
