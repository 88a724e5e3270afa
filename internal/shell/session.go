package shell

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// EchoPrefix marks transcript lines that echo user input.
const EchoPrefix = "$ "

// DefaultBranch is the branch every session starts on.
const DefaultBranch = "main"

// Session is the mutable state of one simulator session besides the
// configuration store. It is owned by whoever drives the session and is not
// safe for concurrent use.
type Session struct {
	// ID correlates log lines of one session.
	ID            string
	CurrentBranch string
	Transcript    []string
}

// NewSession creates a session on DefaultBranch whose transcript starts with
// the given banner lines.
func NewSession(banner ...string) *Session {
	return &Session{
		ID:            uuid.NewString(),
		CurrentBranch: DefaultBranch,
		Transcript:    slices.Clone(banner),
	}
}

// DefaultBanner returns the greeting shown at the top of a fresh transcript.
func DefaultBanner(version string) []string {
	return []string{
		EchoPrefix + "gitsim --version " + version,
		`Secure Shell established. Type "help" to list available git configuration commands.`,
	}
}

// IsEcho reports whether a transcript line is an echoed input line.
func IsEcho(line string) bool {
	return strings.HasPrefix(line, EchoPrefix)
}

// Result is the outcome of interpreting one line.
type Result struct {
	Kind Kind
	// Output is the text shown to the learner, empty when suppressed.
	Output string
	// TranscriptEntries are the lines to append to the transcript: the
	// echoed input followed by Output when it is not empty. Clear and exit
	// produce no entries.
	TranscriptEntries []string

	StoreMutated   bool
	BranchChanged  bool
	ClearRequested bool
	ExitRequested  bool
}

// Apply updates the transcript with a result: clear empties it, anything
// else appends TranscriptEntries.
func (s *Session) Apply(r Result) {
	if r.ClearRequested {
		s.Transcript = []string{}
		return
	}
	s.Transcript = append(s.Transcript, r.TranscriptEntries...)
}
