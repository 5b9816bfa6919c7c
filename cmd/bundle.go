// File: cmd/bundle.go
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"codebundle/pkg/bundle"
	"codebundle/pkg/logging"
	"codebundle/pkg/registry"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// bundleOptions holds the raw flag values of the bundle command.
type bundleOptions struct {
	languages        []string
	output           string
	note             bool
	sort             string
	removeEmptyLines bool
	author           string
	dir              string
}

func newBundleCommand() *cobra.Command {
	opts := &bundleOptions{}

	cmd := &cobra.Command{
		Use:   "bundle",
		Short: "Bundle code files to a single file",
		Long: `Bundle collects every file of the selected languages under the source
directory, skipping bin and debug directories, and writes them one after
another into the output file.

Extra arguments are read as further language tokens, so "-l cs js" and
"-l cs,js" are equivalent.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runBundle(cmd, opts, args)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&opts.languages, "language", "l", nil, "Languages to include (comma separated, or 'all')")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file path and name")
	cmd.Flags().BoolVarP(&opts.note, "note", "n", false, "Include note with source file info")
	cmd.Flags().StringVarP(&opts.sort, "sort", "s", "name", "Sort files by 'name' or 'type'")
	cmd.Flags().BoolVarP(&opts.removeEmptyLines, "remove-empty-lines", "r", false, "Remove empty lines")
	cmd.Flags().StringVarP(&opts.author, "author", "a", "", "Author name to include at the top")
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "Source directory (default: current directory)")

	_ = cmd.MarkFlagRequired("language")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// runBundle runs the bundle pipeline and prints its outcome. Every failure
// is reported as a single line; none is returned to cobra.
func runBundle(cmd *cobra.Command, opts *bundleOptions, extraLanguages []string) {
	p := newPrinter(cmd)
	logger := logging.Logger

	cfg, err := bundle.NewConfig(bundle.Options{
		Languages:        append(append([]string(nil), opts.languages...), extraLanguages...),
		Output:           opts.output,
		IncludeNote:      opts.note,
		Sort:             opts.sort,
		RemoveEmptyLines: opts.removeEmptyLines,
		Author:           opts.author,
	})
	if err != nil {
		logger.Error("Invalid bundle options", zap.Error(err))
		p.Error(err)
		return
	}

	root, err := sourceDir(opts.dir)
	if err != nil {
		logger.Error("Failed to resolve source directory", zap.Error(err))
		p.Error(err)
		return
	}

	result, err := bundle.Run(root, cfg, registry.Default(), logger)
	if err != nil {
		p.Error(err)
		return
	}

	switch result.Status {
	case bundle.StatusNoFiles:
		p.Notice("No code files found for the specified languages.")
	default:
		p.Success("Bundle created: %s", result.Output)
	}
}

// sourceDir resolves the bundle root, defaulting to the working directory.
func sourceDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return abs, nil
}
