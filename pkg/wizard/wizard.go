// Package wizard builds a bundle response file by prompting for each option.
package wizard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"codebundle/pkg/bundle"
	"codebundle/pkg/registry"
	"codebundle/pkg/rspfile"

	"go.uber.org/zap"
)

// ErrAborted is returned when input ends before every answer was collected.
var ErrAborted = errors.New("input ended before the response file was complete")

// Answers holds the validated values collected by the wizard.
type Answers struct {
	Output           string
	Languages        []string
	IncludeNote      bool
	Sort             bundle.SortKey
	RemoveEmptyLines bool
	Author           string
	ResponseFile     string
}

// Options converts the answers to bundle options.
func (a Answers) Options() bundle.Options {
	return bundle.Options{
		Languages:        a.Languages,
		Output:           a.Output,
		IncludeNote:      a.IncludeNote,
		Sort:             a.Sort.String(),
		RemoveEmptyLines: a.RemoveEmptyLines,
		Author:           a.Author,
	}
}

// step is one state of the wizard: a prompt and the validator that stores
// its answer. A step repeats until apply succeeds.
type step struct {
	prompt string
	apply  func(input string, a *Answers) error
}

// Wizard prompts on out and reads answers from in, one line per answer.
type Wizard struct {
	in      *bufio.Reader
	out     io.Writer
	baseDir string
	reg     *registry.Registry
	logger  *zap.Logger
	prompts bool
}

// New creates a Wizard. Relative paths entered by the user resolve against baseDir.
func New(in io.Reader, out io.Writer, baseDir string, reg *registry.Registry, logger *zap.Logger) *Wizard {
	if reg == nil {
		reg = registry.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Wizard{
		in:      bufio.NewReader(in),
		out:     out,
		baseDir: baseDir,
		reg:     reg,
		logger:  logger,
		prompts: true,
	}
}

// SetPrompts controls whether prompts are printed before each answer is
// read. Validation errors and the final confirmation are always printed.
func (w *Wizard) SetPrompts(show bool) {
	w.prompts = show
}

func (w *Wizard) steps() []step {
	return []step{
		{"Output file name (with path if needed): ", func(in string, a *Answers) (err error) {
			a.Output, err = ValidateOutputPath(in, w.baseDir)
			return err
		}},
		{"Languages (comma separated, or 'all'): ", func(in string, a *Answers) (err error) {
			a.Languages, err = ParseLanguages(in, w.reg)
			return err
		}},
		{"Include note? (y/n): ", func(in string, a *Answers) (err error) {
			a.IncludeNote, err = ParseYesNo(in)
			return err
		}},
		{"Sort by 'name' or 'type' (default: name): ", func(in string, a *Answers) (err error) {
			a.Sort, err = ParseSort(in)
			return err
		}},
		{"Remove empty lines? (y/n): ", func(in string, a *Answers) (err error) {
			a.RemoveEmptyLines, err = ParseYesNo(in)
			return err
		}},
		{"Author name (optional): ", func(in string, a *Answers) error {
			a.Author = strings.TrimSpace(in)
			return nil
		}},
		{"Enter response file name (.rsp): ", func(in string, a *Answers) (err error) {
			a.ResponseFile, err = ValidateResponseFileName(in, w.baseDir)
			return err
		}},
	}
}

// Collect runs every step in order and returns the answers.
func (w *Wizard) Collect() (Answers, error) {
	var a Answers
	for _, s := range w.steps() {
		for {
			if w.prompts {
				fmt.Fprint(w.out, s.prompt)
			}
			line, err := w.readLine()
			if err != nil {
				if w.prompts {
					fmt.Fprintln(w.out)
				}
				return Answers{}, err
			}
			if err := s.apply(line, &a); err != nil {
				w.logger.Debug("Rejected wizard answer", zap.String("prompt", s.prompt), zap.Error(err))
				fmt.Fprintf(w.out, "Error: %v. Please try again.\n", err)
				continue
			}
			break
		}
	}
	return a, nil
}

// Run collects the answers, writes the response file and returns its path.
func (w *Wizard) Run() (string, error) {
	a, err := w.Collect()
	if err != nil {
		return "", err
	}

	cfg, err := bundle.NewConfig(a.Options())
	if err != nil {
		return "", fmt.Errorf("invalid answers: %w", err)
	}
	args := append([]string{"bundle"}, cfg.Args()...)
	if err := rspfile.Write(a.ResponseFile, args); err != nil {
		w.logger.Error("Failed to write response file", zap.String("file", a.ResponseFile), zap.Error(err))
		return "", err
	}

	w.logger.Info("Response file created", zap.String("file", a.ResponseFile), zap.Strings("args", args))
	fmt.Fprintf(w.out, "Response file '%s' created successfully!\n", a.ResponseFile)
	return a.ResponseFile, nil
}

// readLine returns the next line without its terminator. A final line with
// no terminator is accepted; end of input with nothing read is ErrAborted.
func (w *Wizard) readLine() (string, error) {
	line, err := w.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("failed to read user input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
