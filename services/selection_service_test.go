package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionStartsClosed(t *testing.T) {
	s := NewSelectionState()

	_, open := s.SelectedID()
	assert.False(t, open)
}

func TestSelectionOpenAndRead(t *testing.T) {
	s := NewSelectionState()

	s.Open("ORD-001")

	id, open := s.SelectedID()
	assert.True(t, open)
	assert.Equal(t, "ORD-001", id)
}

func TestSelectionOpenReplacesPrevious(t *testing.T) {
	s := NewSelectionState()

	s.Open("ORD-001")
	s.Open("ORD-002")

	id, open := s.SelectedID()
	assert.True(t, open)
	assert.Equal(t, "ORD-002", id, "Activating another row replaces the selection")
}

func TestSelectionDismiss(t *testing.T) {
	s := NewSelectionState()

	s.Open("ORD-001")
	s.Dismiss()

	_, open := s.SelectedID()
	assert.False(t, open)
}

func TestSelectionDismissIsIdempotent(t *testing.T) {
	s := NewSelectionState()

	// Dismissing a closed selection is a no-op, not an error, and every
	// dismiss gesture resolves to this same transition
	s.Dismiss()
	s.Dismiss()

	_, open := s.SelectedID()
	assert.False(t, open)

	s.Open("ORD-001")
	s.Dismiss()
	s.Dismiss()

	_, open = s.SelectedID()
	assert.False(t, open)
}

func TestSetSelectionState(t *testing.T) {
	original := GetSelectionState()
	defer SetSelectionState(original)

	replacement := NewSelectionState()
	replacement.Open("ORD-002")
	SetSelectionState(replacement)

	id, open := GetSelectionState().SelectedID()
	assert.True(t, open)
	assert.Equal(t, "ORD-002", id)
}
