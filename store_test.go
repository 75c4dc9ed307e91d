package main

import (
	"testing"
)

func newTestPuzzle() *Puzzle {
	return &Puzzle{
		Type: "wordsearch",
		WordSearch: &WordSearchData{
			Grid:  [][]string{{"C", "A", "T"}},
			Words: []string{"CAT"},
			Size:  3,
		},
	}
}

func TestSaveAndGetPuzzle(t *testing.T) {
	s := NewStore()
	p := s.SavePuzzle(newTestPuzzle())

	if p.ID == "" {
		t.Fatal("expected puzzle to have an ID")
	}
	if p.CreatedAt.IsZero() {
		t.Fatal("expected puzzle to have a creation time")
	}
	if got := s.GetPuzzle(p.ID); got == nil {
		t.Fatal("expected to find saved puzzle")
	}
	if got := s.GetPuzzle("nonexistent"); got != nil {
		t.Fatal("expected nil for unknown ID")
	}
}

func TestListPuzzles(t *testing.T) {
	s := NewStore()
	s.SavePuzzle(newTestPuzzle())
	s.SavePuzzle(newTestPuzzle())

	list := s.ListPuzzles()
	if len(list) != 2 {
		t.Fatalf("expected 2 puzzles, got %d", len(list))
	}
	// Most recent first.
	if list[0].CreatedAt.Before(list[1].CreatedAt) {
		t.Fatal("expected puzzles sorted by descending creation time")
	}
}

func TestUniqueIDs(t *testing.T) {
	s := NewStore()
	seen := make(map[string]bool)
	for range 100 {
		p := s.SavePuzzle(newTestPuzzle())
		if seen[p.ID] {
			t.Fatalf("duplicate ID %s", p.ID)
		}
		seen[p.ID] = true
	}
}
