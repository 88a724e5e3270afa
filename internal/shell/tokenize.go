package shell

import "strings"

// Tokenize splits a line on runs of whitespace.
//
// There is no quote-aware lexing: `"Ada Lovelace"` yields the two tokens
// `"Ada` and `Lovelace"`. Commands that accept multi-word values join the
// trailing tokens back together and drop the quote characters with
// StripQuotes.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// StripQuotes removes every double quote character from s.
func StripQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, "")
}
