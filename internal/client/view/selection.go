// Package view holds local UI state for the freelancer home screen that is
// derived from, but independent of, the remote data: which project is
// selected and whether the detail overlay is open.
package view

import "github.com/Guru-25/FreeFusion/internal/client/models"

// Selection tracks the single record currently chosen for detail display and
// the visibility of the detail overlay.
//
// Invariant: an open overlay always has a selection. The converse does not
// hold: Close hides the overlay but keeps the selection, matching the
// observed screen behavior.
type Selection struct {
	selected  *models.ProjectRequest
	modalOpen bool
}

// SelectAndOpen chooses item and opens the overlay, replacing any prior
// selection.
func (s *Selection) SelectAndOpen(item models.ProjectRequest) {
	s.selected = &item
	s.modalOpen = true
}

// Close hides the overlay. The selection is retained.
func (s *Selection) Close() {
	s.modalOpen = false
}

// Selected returns the currently selected item, if any.
func (s *Selection) Selected() (models.ProjectRequest, bool) {
	if s.selected == nil {
		return models.ProjectRequest{}, false
	}
	return *s.selected, true
}

// ModalOpen reports whether the detail overlay is visible.
func (s *Selection) ModalOpen() bool {
	return s.modalOpen
}
