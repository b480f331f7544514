package services

import "sync"

// SelectionState tracks which single order, if any, is open in the detail
// view. It has exactly two states: closed, or open on one order id. Only the
// identity is stored — the open order is always resolved against the live
// list, so a status change made while the detail view is open shows up the
// next time the selection is read.
type SelectionState struct {
	mu         sync.Mutex
	selectedID string
	open       bool
}

// NewSelectionState creates a closed selection
func NewSelectionState() *SelectionState {
	return &SelectionState{}
}

// Open selects the given order for detail viewing. Opening while another
// order is selected simply replaces the selection.
func (s *SelectionState) Open(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedID = id
	s.open = true
}

// Dismiss closes the detail view. Dismissing an already closed selection is
// a no-op, not an error; every dismiss gesture (close button, backdrop
// click) funnels into this one transition.
func (s *SelectionState) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedID = ""
	s.open = false
}

// SelectedID returns the open order id, if any
func (s *SelectionState) SelectedID() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedID, s.open
}

var selectionInstance = NewSelectionState()

// GetSelectionState returns the selection state instance
func GetSelectionState() *SelectionState {
	return selectionInstance
}

// SetSelectionState sets the selection state instance (primarily for testing)
func SetSelectionState(s *SelectionState) {
	selectionInstance = s
}
