package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// printer writes the one-line status messages shown to the user. Errors
// share the output stream with the other status lines.
type printer struct {
	out     io.Writer
	success *color.Color
	notice  *color.Color
	failure *color.Color
}

func newPrinter(cmd *cobra.Command) *printer {
	p := &printer{
		out:     cmd.OutOrStdout(),
		success: color.New(color.FgGreen),
		notice:  color.New(color.FgYellow),
		failure: color.New(color.FgRed, color.Bold),
	}
	if !isTerminal(p.out) {
		p.success.DisableColor()
		p.notice.DisableColor()
		p.failure.DisableColor()
	}
	return p
}

func (p *printer) Success(format string, a ...interface{}) {
	p.success.Fprintln(p.out, fmt.Sprintf(format, a...))
}

func (p *printer) Notice(format string, a ...interface{}) {
	p.notice.Fprintln(p.out, fmt.Sprintf(format, a...))
}

func (p *printer) Error(err error) {
	p.failure.Fprintln(p.out, "Error: "+err.Error())
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
