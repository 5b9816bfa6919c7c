package cmd

import (
	"io"
	"os"

	"codebundle/pkg/logging"
	"codebundle/pkg/registry"
	"codebundle/pkg/wizard"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

func newCreateRspCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create-rsp",
		Short: "Create a response file for the bundle command",
		Long: `Create-rsp asks for each bundle option in turn and saves the answers as a
single line of arguments. Replay it with "codebundle @<file>".

When answers are piped in rather than typed, the prompts are not printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd)
			logger := logging.Logger

			wd, err := os.Getwd()
			if err != nil {
				p.Error(err)
				return nil
			}

			in := cmd.InOrStdin()
			w := wizard.New(in, cmd.OutOrStdout(), wd, registry.Default(), logger)
			if !isInteractive(in) {
				logger.Debug("Reading answers from non-interactive input")
				w.SetPrompts(false)
			}

			if _, err := w.Run(); err != nil {
				logger.Error("Failed to create response file", zap.Error(err))
				p.Error(err)
			}
			return nil
		},
	}
}

// isInteractive reports whether r is a terminal. Readers that are not
// files are treated as interactive.
func isInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return true
	}
	return term.IsTerminal(int(f.Fd()))
}
