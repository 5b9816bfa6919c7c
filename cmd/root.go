package cmd

import (
	"os"

	"codebundle/pkg/logging"
	"codebundle/pkg/rspfile"
	"codebundle/pkg/version"

	"github.com/spf13/cobra"
)

// NewRootCommand creates the codebundle command tree.
func NewRootCommand() *cobra.Command {
	var (
		debug    bool
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "codebundle",
		Short: "codebundle is a CLI tool for bundling source files",
		Long: `codebundle collects source files from a directory tree, filters them by
language, optionally annotates and reorders them, and concatenates them
into a single output file.

Arguments of the form @file are replaced by the contents of that response
file, as written by "codebundle create-rsp".`,
		Version:       version.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Setup(debug, logLevel, "codebundle", version.Get().Version)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable development logging")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newBundleCommand())
	cmd.AddCommand(newCreateRspCommand())
	cmd.AddCommand(newVersionCommand())

	return cmd
}

// Execute expands response file arguments and runs the root command.
func Execute(args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	return run(NewRootCommand(), args, wd)
}

func run(root *cobra.Command, args []string, baseDir string) error {
	expanded, err := rspfile.Expand(args, baseDir)
	if err != nil {
		return err
	}
	root.SetArgs(expanded)
	return root.Execute()
}
