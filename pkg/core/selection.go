package core

// Selection tracks which single note is active for editing and viewing.
// Invariant: whenever non-empty, the selected id references a note present
// in the current collection. The store repairs the selection synchronously
// on every collection change, so it is never observably dangling.
type Selection struct {
	id string
}

// ID returns the selected note id, or "" when nothing is selected.
func (s *Selection) ID() string { return s.id }

func (s *Selection) set(id string) { s.id = id }

func (s *Selection) clear() { s.id = "" }

// repair re-establishes the invariant against the given collection: a still
// present id is kept, otherwise the first (newest) note is selected, or the
// selection is cleared when the collection is empty.
func (s *Selection) repair(notes []Note) {
	if s.id != "" {
		for i := range notes {
			if notes[i].ID == s.id {
				return
			}
		}
	}
	if len(notes) > 0 {
		s.id = notes[0].ID
		return
	}
	s.id = ""
}
