package main

import (
	"sort"
	"strings"
)

// Direction is a unit step on the grid with a human-readable name.
type Direction struct {
	Name string `json:"name"`
	DRow int    `json:"d_row"`
	DCol int    `json:"d_col"`
}

var (
	dirRight    = Direction{Name: "right", DRow: 0, DCol: 1}
	dirDown     = Direction{Name: "down", DRow: 1, DCol: 0}
	dirDiagonal = Direction{Name: "diagonal", DRow: 1, DCol: 1}
	dirAcross   = Direction{Name: "across", DRow: 0, DCol: 1}
)

// wordSearchDirections is the fixed set used by the word-search placer.
var wordSearchDirections = []Direction{dirRight, dirDown, dirDiagonal}

// PlacedWord records a committed placement. The ordered list of placements
// is the puzzle's solution key. Clue is empty for word searches.
type PlacedWord struct {
	Word      string `json:"word"`
	Clue      string `json:"clue,omitempty"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Direction string `json:"direction"`
}

// ClueEntry is one numbered crossword clue.
type ClueEntry struct {
	Number int    `json:"number"`
	Clue   string `json:"clue"`
	Answer string `json:"answer"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}

// VocabEntry pairs a word with its clue, as supplied by the caller or by
// the vocabulary generator.
type VocabEntry struct {
	Word string `json:"word"`
	Clue string `json:"clue"`
}

// WordSearchData is the result of a word-search generation.
type WordSearchData struct {
	Grid     [][]string   `json:"grid"`
	Words    []string     `json:"words"`
	Size     int          `json:"size"`
	Solution []PlacedWord `json:"solution"`
	Skipped  []string     `json:"skipped,omitempty"`
}

// CrosswordData is the result of a crossword generation. Grid cells hold a
// single uppercase letter, or "" for a block cell.
type CrosswordData struct {
	Grid        [][]string   `json:"grid"`
	AcrossClues []ClueEntry  `json:"across_clues"`
	DownClues   []ClueEntry  `json:"down_clues"`
	Rows        int          `json:"rows"`
	Cols        int          `json:"cols"`
	Solution    []PlacedWord `json:"solution"`
	Skipped     []string     `json:"skipped,omitempty"`
}

const (
	minWordSearchLen = 3
	maxWordSearchLen = 15
	minCrosswordLen  = 2
)

// cleanWord uppercases a raw word and strips everything outside A-Z.
func cleanWord(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(raw) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// normalizeWords cleans a raw word list for word-search use: uppercase,
// letters only, length 3-15, longest first (stable for equal lengths so
// the caller's order breaks ties).
func normalizeWords(raw []string) ([]string, error) {
	words := make([]string, 0, len(raw))
	for _, w := range raw {
		c := cleanWord(w)
		if len(c) >= minWordSearchLen && len(c) <= maxWordSearchLen {
			words = append(words, c)
		}
	}
	if len(words) == 0 {
		return nil, ErrNoValidWords
	}
	sort.SliceStable(words, func(i, j int) bool {
		return len(words[i]) > len(words[j])
	})
	return words, nil
}

// normalizeVocabulary cleans word/clue pairs for crossword use. A usable
// entry keeps at least 2 letters after cleaning; fewer than 2 usable
// entries cannot intersect, so that is an error.
func normalizeVocabulary(raw []VocabEntry) ([]VocabEntry, error) {
	entries := make([]VocabEntry, 0, len(raw))
	for _, e := range raw {
		c := cleanWord(e.Word)
		if len(c) >= minCrosswordLen {
			entries = append(entries, VocabEntry{Word: c, Clue: strings.TrimSpace(e.Clue)})
		}
	}
	if len(entries) < 2 {
		return nil, ErrNoValidWords
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return len(entries[i].Word) > len(entries[j].Word)
	})
	return entries, nil
}
