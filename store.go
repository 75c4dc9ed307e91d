package main

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// Puzzle is a stored generation result. Exactly one of WordSearch and
// Crossword is set, according to Type.
type Puzzle struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"` // "wordsearch" or "crossword"
	Topic      string          `json:"topic,omitempty"`
	WordSearch *WordSearchData `json:"word_search,omitempty"`
	Crossword  *CrosswordData  `json:"crossword,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Store holds all generated puzzles in memory.
type Store struct {
	mu      sync.RWMutex
	puzzles map[string]*Puzzle
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{puzzles: make(map[string]*Puzzle)}
}

// SavePuzzle persists a puzzle and returns it with a generated ID.
func (s *Store) SavePuzzle(p *Puzzle) *Puzzle {
	p.ID = generateID()
	p.CreatedAt = time.Now()

	s.mu.Lock()
	s.puzzles[p.ID] = p
	s.mu.Unlock()

	return p
}

// GetPuzzle returns a puzzle by ID, or nil if not found.
func (s *Store) GetPuzzle(id string) *Puzzle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.puzzles[id]
}

// ListPuzzles returns all puzzles, most recent first.
func (s *Store) ListPuzzles() []*Puzzle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*Puzzle, 0, len(s.puzzles))
	for _, p := range s.puzzles {
		list = append(list, p)
	}
	// Sort by CreatedAt descending (simple insertion, small N).
	for i := 1; i < len(list); i++ {
		for j := i; j > 0 && list[j].CreatedAt.After(list[j-1].CreatedAt); j-- {
			list[j], list[j-1] = list[j-1], list[j]
		}
	}
	return list
}

func generateID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}
