package main

import "errors"

var (
	// ErrNoValidWords means normalization left nothing to place: zero
	// usable words for a word search, or fewer than two for a crossword.
	ErrNoValidWords = errors.New("no valid words after normalization")

	// ErrNoWordsPlaced means every word-search word exhausted its
	// placement trials. The grid is too small for the word set.
	ErrNoWordsPlaced = errors.New("no words could be placed on the grid")

	// ErrInsufficientIntersections means the crossword layout ended with
	// fewer than two placed words, so nothing intersects the seed.
	ErrInsufficientIntersections = errors.New("not enough intersecting words for a crossword")
)
