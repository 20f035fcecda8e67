// internal/domain/selection/tracker.go
package selection

import (
	"sort"
	"sync"
)

// Tracker is the set of order ids currently checked for bulk actions.
// Selection is ephemeral: it is never persisted and survives filter
// changes until explicitly cleared.
type Tracker struct {
	mu       sync.Mutex
	selected map[string]struct{}
}

// NewTracker creates an empty selection tracker
func NewTracker() *Tracker {
	return &Tracker{selected: make(map[string]struct{})}
}

// Toggle flips membership of id in the selection set
func (t *Tracker) Toggle(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.selected[id]; ok {
		delete(t.selected, id)
	} else {
		t.selected[id] = struct{}{}
	}
}

// SelectAll is scoped to the currently displayed page. If every page id
// is already selected and nothing else is, the selection is cleared;
// otherwise the selection becomes exactly the page ids, discarding any
// selection made on other pages.
func (t *Tracker) SelectAll(pageIDs []string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	allSelected := len(t.selected) == len(pageIDs)
	if allSelected {
		for _, id := range pageIDs {
			if _, ok := t.selected[id]; !ok {
				allSelected = false
				break
			}
		}
	}

	t.selected = make(map[string]struct{})
	if !allSelected {
		for _, id := range pageIDs {
			t.selected[id] = struct{}{}
		}
	}
}

// Clear empties the selection set
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.selected = make(map[string]struct{})
}

// IsSelected reports whether id is in the selection set
func (t *Tracker) IsSelected(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, ok := t.selected[id]
	return ok
}

// IDs returns the selected ids in stable sorted order
func (t *Tracker) IDs() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	ids := make([]string, 0, len(t.selected))
	for id := range t.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Count returns the selection set size
func (t *Tracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.selected)
}
