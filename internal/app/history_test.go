package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryAdd(t *testing.T) {
	h := NewHistory(3)
	h.Add("git status")
	h.Add("   ")
	h.Add("git status")
	h.Add("git log")
	h.Add("help")
	h.Add("git branch")

	assert.Equal(t, []string{"git branch", "help", "git log"}, h.Entries())
}

func TestHistoryZeroLimitRecordsNothing(t *testing.T) {
	h := NewHistory(0)
	h.Add("git status")

	assert.Empty(t, h.Entries())
	_, ok := h.Prev("")
	assert.False(t, ok)
}

func TestHistoryNavigation(t *testing.T) {
	h := NewHistory(10)
	h.Add("first")
	h.Add("second")

	v, ok := h.Prev("draft")
	assert.True(t, ok)
	assert.Equal(t, "second", v)
	assert.True(t, h.Browsing())

	v, _ = h.Prev("ignored")
	assert.Equal(t, "first", v)

	// Stays on the oldest entry
	v, _ = h.Prev("ignored")
	assert.Equal(t, "first", v)

	v, _ = h.Next()
	assert.Equal(t, "second", v)

	// Walking past the newest entry restores the draft
	v, ok = h.Next()
	assert.True(t, ok)
	assert.Equal(t, "draft", v)
	assert.False(t, h.Browsing())

	_, ok = h.Next()
	assert.False(t, ok)
}

func TestHistoryAddStopsBrowsing(t *testing.T) {
	h := NewHistory(10)
	h.Add("first")
	h.Prev("")
	h.Add("second")

	assert.False(t, h.Browsing())
	v, _ := h.Prev("")
	assert.Equal(t, "second", v)
}
