package shell

import (
	"fmt"
	"strings"
	"time"

	"github.com/chmouel/gitsim/internal/store"
)

// fakeCommit is the abbreviated hash every simulated commit reports.
const fakeCommit = "f3a2d5e"

const (
	fallbackUserName  = "User"
	fallbackUserEmail = "user@example.com"
	logDateLayout     = "Mon Jan 02 2006"
)

// HelpText is the command reference printed by `help`.
const HelpText = `Available Training Commands:
- git config --list               : Show all active configurations
- git config <key>                : Get value for specific key
- git config --global <key> <val> : Set global user identity
- git config --unset <key>        : Remove configuration entry
- git status                      : View repository state
- git add <file>                  : Stage changes
- git commit -m "<msg>"           : Create a new history snapshot
- git branch [<name>]             : List branches or create one
- git checkout [-b] <branch>      : Switch to another branch
- git log                         : Show commit history
- clear                           : Reset terminal history
- exit                            : Return to mission control`

// effect is what executing a command produces before the transcript rules
// are applied.
type effect struct {
	output        string
	storeMutated  bool
	branchChanged bool
	clear         bool
	exit          bool
}

// execute runs a classified command against the store and session. Each
// kind degrades to a message or to silence; nothing here fails.
func execute(cmd Command, st *store.Store, sess *Session, now time.Time) effect {
	switch cmd.Kind {
	case KindHelp:
		return effect{output: HelpText}
	case KindClear:
		return effect{clear: true}
	case KindExit:
		return effect{exit: true}
	case KindStatus:
		return effect{output: statusOutput(sess.CurrentBranch)}
	case KindAdd:
		return effect{output: "Staged changes for commit."}
	case KindCommit:
		return effect{output: fmt.Sprintf("[%s %s] %s\n 1 file changed, 1 insertion(+)", sess.CurrentBranch, fakeCommit, cmd.Message)}
	case KindBranchCreate:
		return effect{output: fmt.Sprintf("Created branch '%s'", cmd.Name)}
	case KindBranchList:
		return effect{output: fmt.Sprintf("* %s\n  development\n  staging", sess.CurrentBranch)}
	case KindCheckout:
		return checkout(cmd, sess)
	case KindLog:
		return effect{output: logOutput(st, sess.CurrentBranch, now)}
	case KindConfigList:
		return effect{output: listOutput(st)}
	case KindConfigUnset:
		// Reported as removed whether or not the key existed.
		removed := st.Unset(cmd.Key)
		return effect{
			output:       fmt.Sprintf("Configuration key '%s' removed successfully.", cmd.Key),
			storeMutated: removed,
		}
	case KindConfigGet:
		if v, ok := st.Get(cmd.Key); ok && v != "" {
			return effect{output: v}
		}
		return effect{output: fmt.Sprintf("Error: Key '%s' not found in active scope.", cmd.Key)}
	case KindConfigSet:
		if cmd.Key == "" || cmd.Value == "" {
			return effect{}
		}
		st.Set(cmd.Key, cmd.Value)
		return effect{
			output:       fmt.Sprintf("Successfully set %s in global scope.", cmd.Key),
			storeMutated: true,
		}
	default:
		return effect{output: fmt.Sprintf("System Error: Command '%s' not recognized in this shell.", cmd.Name)}
	}
}

func checkout(cmd Command, sess *Session) effect {
	if cmd.Branch == "" {
		return effect{}
	}
	sess.CurrentBranch = cmd.Branch
	return effect{
		output:        fmt.Sprintf("Switched to branch '%s'", cmd.Branch),
		branchChanged: true,
	}
}

func statusOutput(branch string) string {
	return fmt.Sprintf("On branch %s\nYour branch is up to date with 'origin/%s'.\n\nnothing to commit, working tree clean", branch, branch)
}

func logOutput(st *store.Store, branch string, now time.Time) string {
	name, _ := st.Get("user.name")
	if name == "" {
		name = fallbackUserName
	}
	email, _ := st.Get("user.email")
	if email == "" {
		email = fallbackUserEmail
	}
	return fmt.Sprintf("commit %s8 (HEAD -> %s)\nAuthor: %s <%s>\nDate:   %s\n\n    Project architecture baseline established",
		fakeCommit, branch, name, email, now.Format(logDateLayout))
}

func listOutput(st *store.Store) string {
	entries := st.Entries()
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.String())
	}
	return strings.Join(lines, "\n")
}
