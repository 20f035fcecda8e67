package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggle(t *testing.T) {
	tracker := NewTracker()

	tracker.Toggle("3210")
	assert.True(t, tracker.IsSelected("3210"))
	assert.Equal(t, 1, tracker.Count())

	tracker.Toggle("3210")
	assert.False(t, tracker.IsSelected("3210"))
	assert.Equal(t, 0, tracker.Count())
}

func TestSelectAllTogglesPage(t *testing.T) {
	tracker := NewTracker()
	page := []string{"3211", "3212"}

	tracker.SelectAll(page)
	assert.Equal(t, []string{"3211", "3212"}, tracker.IDs())

	// Calling again with the same fully-selected page clears everything
	tracker.SelectAll(page)
	assert.Empty(t, tracker.IDs())
}

func TestSelectAllIsPageScoped(t *testing.T) {
	tracker := NewTracker()

	tracker.Toggle("3210") // selected on page 1
	tracker.SelectAll([]string{"3220", "3221"})

	// Page 1's selection is discarded, not merged
	assert.Equal(t, []string{"3220", "3221"}, tracker.IDs())
	assert.False(t, tracker.IsSelected("3210"))
}

func TestSelectAllWithPartialSelectionReplaces(t *testing.T) {
	tracker := NewTracker()
	page := []string{"1", "2", "3"}

	tracker.Toggle("1")
	tracker.Toggle("9")
	tracker.SelectAll(page)

	assert.Equal(t, []string{"1", "2", "3"}, tracker.IDs())
}

func TestSelectAllNeedsExactSetToClear(t *testing.T) {
	tracker := NewTracker()

	// Every page id selected plus an extra: not "all selected", so the
	// page replaces the set instead of clearing it
	tracker.Toggle("1")
	tracker.Toggle("2")
	tracker.Toggle("extra")
	tracker.SelectAll([]string{"1", "2"})

	assert.Equal(t, []string{"1", "2"}, tracker.IDs())
}

func TestClear(t *testing.T) {
	tracker := NewTracker()

	tracker.Toggle("a")
	tracker.Toggle("b")
	tracker.Clear()

	assert.Empty(t, tracker.IDs())
	assert.Equal(t, 0, tracker.Count())
}

func TestManagerSessionIsolation(t *testing.T) {
	manager := NewManager()

	one := manager.ForSession("session-1")
	two := manager.ForSession("session-2")
	one.Toggle("3210")

	assert.True(t, manager.ForSession("session-1").IsSelected("3210"))
	assert.False(t, two.IsSelected("3210"))

	// Same session always resolves to the same tracker
	assert.Same(t, one, manager.ForSession("session-1"))

	manager.Drop("session-1")
	assert.False(t, manager.ForSession("session-1").IsSelected("3210"))
}
