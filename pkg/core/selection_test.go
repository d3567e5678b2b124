package core

import "testing"

func TestSelectionRepair(t *testing.T) {
	notes := []Note{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	t.Run("Keeps Present ID", func(t *testing.T) {
		s := Selection{}
		s.set("b")
		s.repair(notes)
		if s.ID() != "b" {
			t.Errorf("expected 'b', got %q", s.ID())
		}
	})

	t.Run("Falls Back To First", func(t *testing.T) {
		s := Selection{}
		s.set("gone")
		s.repair(notes)
		if s.ID() != "a" {
			t.Errorf("expected 'a', got %q", s.ID())
		}
	})

	t.Run("Selects First When Unset", func(t *testing.T) {
		s := Selection{}
		s.repair(notes)
		if s.ID() != "a" {
			t.Errorf("expected 'a', got %q", s.ID())
		}
	})

	t.Run("Clears On Empty Collection", func(t *testing.T) {
		s := Selection{}
		s.set("a")
		s.repair(nil)
		if s.ID() != "" {
			t.Errorf("expected empty selection, got %q", s.ID())
		}
	})
}
