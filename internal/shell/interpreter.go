// Package shell implements the simulated git command line: it classifies a
// typed line, applies its effect to the configuration store and the session,
// and produces the text a real terminal would plausibly print.
//
// Interpretation is synchronous and never fails. Unknown or malformed input
// degrades to an explanatory message or to no output at all.
package shell

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/chmouel/gitsim/internal/store"
)

// Interpreter turns input lines into results. The zero value is not usable;
// create one with New.
type Interpreter struct {
	now    func() time.Time
	logger *zap.Logger
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithClock sets the time source used for `git log` dates.
func WithClock(now func() time.Time) Option {
	return func(i *Interpreter) {
		if now != nil {
			i.now = now
		}
	}
}

// WithLogger sets the logger receiving one debug event per interpreted line.
func WithLogger(l *zap.Logger) Option {
	return func(i *Interpreter) {
		if l != nil {
			i.logger = l
		}
	}
}

// New creates an interpreter.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Interpret processes one line. Callers are expected to filter blank input;
// a blank line is still accepted and yields an empty result.
//
// The store and session are mutated in place. The transcript is not touched
// here: the returned TranscriptEntries (or ClearRequested) tell the caller
// what to do with it, see Session.Apply.
func (i *Interpreter) Interpret(line string, st *store.Store, sess *Session) Result {
	line = strings.TrimSpace(line)
	if line == "" {
		return Result{}
	}

	cmd := Classify(line)
	eff := execute(cmd, st, sess, i.now())

	res := Result{
		Kind:           cmd.Kind,
		Output:         eff.output,
		StoreMutated:   eff.storeMutated,
		BranchChanged:  eff.branchChanged,
		ClearRequested: eff.clear,
		ExitRequested:  eff.exit,
	}
	if !eff.clear && !eff.exit {
		res.TranscriptEntries = []string{EchoPrefix + line}
		if eff.output != "" {
			res.TranscriptEntries = append(res.TranscriptEntries, eff.output)
		}
	}

	i.logger.Debug("interpreted command",
		zap.String("session", sess.ID),
		zap.Stringer("kind", cmd.Kind),
		zap.String("branch", sess.CurrentBranch),
		zap.Bool("store_mutated", res.StoreMutated),
		zap.Int("store_len", st.Len()),
	)

	return res
}

// Run interprets a line and applies the result to the session transcript.
func (i *Interpreter) Run(line string, st *store.Store, sess *Session) Result {
	res := i.Interpret(line, st, sess)
	sess.Apply(res)
	return res
}
