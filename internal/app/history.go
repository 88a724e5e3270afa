package app

import "strings"

// History keeps submitted lines for bash-style up/down navigation. Entries
// are stored newest first.
type History struct {
	entries  []string
	limit    int
	index    int // -1 = not browsing
	original string
}

// NewHistory creates a history holding at most limit lines. A limit of zero
// disables history.
func NewHistory(limit int) *History {
	return &History{limit: limit, index: -1}
}

// Add records a submitted line and stops browsing. Blank lines and repeats
// of the newest entry are not recorded.
func (h *History) Add(line string) {
	h.Reset()
	line = strings.TrimSpace(line)
	if line == "" || h.limit <= 0 {
		return
	}
	if len(h.entries) > 0 && h.entries[0] == line {
		return
	}
	h.entries = append([]string{line}, h.entries...)
	if len(h.entries) > h.limit {
		h.entries = h.entries[:h.limit]
	}
}

// Prev moves to the next older entry. current is the unsubmitted input,
// restored once Next walks past the newest entry.
func (h *History) Prev(current string) (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.index == -1 {
		h.original = current
		h.index = 0
	} else if h.index < len(h.entries)-1 {
		h.index++
	}
	return h.entries[h.index], true
}

// Next moves to the next newer entry.
func (h *History) Next() (string, bool) {
	switch {
	case h.index > 0:
		h.index--
		return h.entries[h.index], true
	case h.index == 0:
		h.index = -1
		return h.original, true
	}
	return "", false
}

// Reset stops browsing.
func (h *History) Reset() {
	h.index = -1
	h.original = ""
}

// Browsing reports whether an entry is currently recalled.
func (h *History) Browsing() bool {
	return h.index != -1
}

// Entries returns the recorded lines, newest first.
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}
