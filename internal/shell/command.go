package shell

import (
	"slices"
	"strings"
)

// Kind identifies a recognised command shape.
type Kind int

// Command kinds, in dispatch priority order.
const (
	KindUnknown Kind = iota
	KindHelp
	KindClear
	KindExit
	KindStatus
	KindAdd
	KindCommit
	KindBranchCreate
	KindBranchList
	KindCheckout
	KindLog
	KindConfigList
	KindConfigUnset
	KindConfigGet
	KindConfigSet
)

// String returns a short name for the kind, used in logs.
func (k Kind) String() string {
	switch k {
	case KindHelp:
		return "help"
	case KindClear:
		return "clear"
	case KindExit:
		return "exit"
	case KindStatus:
		return "status"
	case KindAdd:
		return "add"
	case KindCommit:
		return "commit"
	case KindBranchCreate:
		return "branch-create"
	case KindBranchList:
		return "branch-list"
	case KindCheckout:
		return "checkout"
	case KindLog:
		return "log"
	case KindConfigList:
		return "config-list"
	case KindConfigUnset:
		return "config-unset"
	case KindConfigGet:
		return "config-get"
	case KindConfigSet:
		return "config-set"
	default:
		return "unknown"
	}
}

const defaultCommitMessage = "Manual update"

// Command is a classified input line together with the arguments its kind
// needs. Fields not used by a kind are left empty.
type Command struct {
	Kind   Kind
	Raw    string
	Tokens []string

	// Name is the new branch for KindBranchCreate and the offending first
	// token for KindUnknown.
	Name string
	// Branch is the checkout target; empty when too few tokens were given.
	Branch string
	// Message is the commit message.
	Message string
	// Key and Value are the config arguments. For KindConfigSet either may be
	// empty when the line could not be resolved.
	Key   string
	Value string
}

// Classify matches a trimmed line against the command table. Literal
// matches are tried before prefix matches so that overlapping shapes such as
// `git config --list` and `git config <key>` resolve deterministically.
// Dispatch is case-insensitive; arguments keep their original case.
func Classify(line string) Command {
	line = strings.TrimSpace(line)
	lower := strings.ToLower(line)
	tokens := Tokenize(line)
	cmd := Command{Raw: line, Tokens: tokens}

	switch {
	case lower == "help":
		cmd.Kind = KindHelp
	case lower == "clear":
		cmd.Kind = KindClear
	case lower == "exit":
		cmd.Kind = KindExit
	case lower == "git status":
		cmd.Kind = KindStatus
	case strings.HasPrefix(lower, "git add"):
		cmd.Kind = KindAdd
	case strings.HasPrefix(lower, "git commit"):
		cmd.Kind = KindCommit
		cmd.Message = commitMessage(line)
	case strings.HasPrefix(lower, "git branch"):
		if len(tokens) == 3 {
			cmd.Kind = KindBranchCreate
			cmd.Name = tokens[2]
		} else {
			cmd.Kind = KindBranchList
		}
	case strings.HasPrefix(lower, "git checkout"):
		cmd.Kind = KindCheckout
		if len(tokens) >= 3 {
			cmd.Branch = tokens[len(tokens)-1]
		}
	case lower == "git log":
		cmd.Kind = KindLog
	case strings.HasPrefix(lower, "git config"):
		classifyConfig(&cmd, lower)
	default:
		cmd.Kind = KindUnknown
		if len(tokens) > 0 {
			cmd.Name = tokens[0]
		}
	}

	return cmd
}

func classifyConfig(cmd *Command, lower string) {
	tokens := cmd.Tokens
	switch {
	case strings.Contains(lower, "--list"):
		cmd.Kind = KindConfigList
	case strings.Contains(lower, "--unset"):
		cmd.Kind = KindConfigUnset
		cmd.Key = tokens[len(tokens)-1]
	case len(tokens) == 3:
		cmd.Kind = KindConfigGet
		cmd.Key = tokens[2]
	case strings.Contains(lower, "--global") || len(tokens) >= 4:
		cmd.Kind = KindConfigSet
		cmd.Key, cmd.Value = configSetArgs(tokens)
	default:
		// `git config` alone or `git config --local`: nothing to resolve.
		cmd.Kind = KindConfigSet
	}
}

// configSetArgs finds the key and value of a set invocation. Flags may appear
// anywhere: every token starting with "--" and the literal git/config words
// are skipped to find the key, and the value is everything after the key's
// position joined by single spaces. A value token that starts with "--" is
// therefore dropped from key detection but kept in the value if it follows
// the key.
func configSetArgs(tokens []string) (key, value string) {
	var candidates []string
	for _, tok := range tokens {
		if strings.HasPrefix(tok, "--") || strings.EqualFold(tok, "git") || strings.EqualFold(tok, "config") {
			continue
		}
		candidates = append(candidates, tok)
	}
	if len(candidates) < 2 {
		return "", ""
	}

	key = candidates[0]
	idx := slices.Index(tokens, key)
	value = StripQuotes(strings.Join(tokens[idx+1:], " "))
	return key, value
}

// commitMessage extracts the text between the first "-m" and the next one,
// with quotes removed.
func commitMessage(line string) string {
	_, rest, found := strings.Cut(line, "-m")
	if !found {
		return defaultCommitMessage
	}
	if before, _, more := strings.Cut(rest, "-m"); more {
		rest = before
	}
	msg := strings.TrimSpace(StripQuotes(rest))
	if msg == "" {
		return defaultCommitMessage
	}
	return msg
}
