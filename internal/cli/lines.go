// Package cli runs simulator sessions without the terminal UI, reading one
// command per line.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chmouel/gitsim/internal/shell"
	"github.com/chmouel/gitsim/internal/store"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// lineInterpreter abstracts the interpreter for testability.
type lineInterpreter interface {
	Run(line string, st *store.Store, sess *shell.Session) shell.Result
}

var _ lineInterpreter = (*shell.Interpreter)(nil)

// Options controls what is written for each processed line.
type Options struct {
	// Quiet prints command output only, without echoing the input.
	Quiet bool
}

// Summary describes a finished line-mode run.
type Summary struct {
	Lines     int
	Mutations int
	Exited    bool
}

// RunLines feeds every non-blank line of in to the interpreter and writes
// the resulting transcript entries to out. It stops at EOF, on "exit" or
// when ctx is cancelled. "clear" writes nothing.
func RunLines(ctx context.Context, interp lineInterpreter, st *store.Store, sess *shell.Session, in io.Reader, out io.Writer, opts Options) (Summary, error) {
	var sum Summary

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		done, err := runLine(interp, st, sess, scanner.Text(), out, opts, &sum)
		if err != nil {
			return sum, err
		}
		if done {
			return sum, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return sum, fmt.Errorf("failed to read input: %w", err)
	}
	return sum, nil
}

// Exec runs lines in order, as RunLines does for a reader.
func Exec(ctx context.Context, interp lineInterpreter, st *store.Store, sess *shell.Session, lines []string, out io.Writer, opts Options) (Summary, error) {
	var sum Summary
	for _, line := range lines {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		done, err := runLine(interp, st, sess, line, out, opts, &sum)
		if err != nil {
			return sum, err
		}
		if done {
			break
		}
	}
	return sum, nil
}

// WriteTranscript writes lines to out, one per line.
func WriteTranscript(out io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func runLine(interp lineInterpreter, st *store.Store, sess *shell.Session, line string, out io.Writer, opts Options, sum *Summary) (bool, error) {
	if strings.TrimSpace(line) == "" {
		return false, nil
	}
	sum.Lines++

	res := interp.Run(line, st, sess)
	if res.StoreMutated {
		sum.Mutations++
	}
	if res.ExitRequested {
		sum.Exited = true
		return true, nil
	}

	if opts.Quiet {
		if res.Output == "" {
			return false, nil
		}
		return false, WriteTranscript(out, []string{res.Output})
	}
	return false, WriteTranscript(out, res.TranscriptEntries)
}
