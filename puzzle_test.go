package main

import (
	"errors"
	"reflect"
	"testing"
)

func TestNormalizeWords(t *testing.T) {
	words, err := normalizeWords([]string{"cat", "Mongoose!", "eléphant", "ox", "dog"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// "ox" is too short; the rest are cleaned, uppercased and sorted
	// longest first with input order breaking ties.
	want := []string{"MONGOOSE", "ELPHANT", "CAT", "DOG"}
	if !reflect.DeepEqual(words, want) {
		t.Fatalf("expected %v, got %v", want, words)
	}
}

func TestNormalizeWordsLengthLimits(t *testing.T) {
	words, err := normalizeWords([]string{"abcdefghijklmnop", "cat"}) // 16 letters
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(words) != 1 || words[0] != "CAT" {
		t.Fatalf("expected only CAT to survive, got %v", words)
	}
}

func TestNormalizeWordsEmpty(t *testing.T) {
	if _, err := normalizeWords(nil); !errors.Is(err, ErrNoValidWords) {
		t.Fatalf("expected ErrNoValidWords, got %v", err)
	}
	if _, err := normalizeWords([]string{"a", "!!", "42"}); !errors.Is(err, ErrNoValidWords) {
		t.Fatalf("expected ErrNoValidWords, got %v", err)
	}
}

func TestNormalizeWordsIdempotent(t *testing.T) {
	first, err := normalizeWords([]string{"bird", "cat", "wombat"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := normalizeWords(first)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("normalization not idempotent: %v vs %v", first, second)
	}
}

func TestNormalizeVocabulary(t *testing.T) {
	vocab, err := normalizeVocabulary([]VocabEntry{
		{Word: "sun", Clue: " star "},
		{Word: "planet", Clue: "orbits a star"},
		{Word: "x", Clue: "too short"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vocab) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(vocab))
	}
	if vocab[0].Word != "PLANET" || vocab[1].Word != "SUN" {
		t.Fatalf("expected longest-first order, got %v", vocab)
	}
	if vocab[1].Clue != "star" {
		t.Fatalf("expected trimmed clue, got %q", vocab[1].Clue)
	}
}

func TestNormalizeVocabularyTooFew(t *testing.T) {
	_, err := normalizeVocabulary([]VocabEntry{{Word: "sun", Clue: "star"}})
	if !errors.Is(err, ErrNoValidWords) {
		t.Fatalf("expected ErrNoValidWords, got %v", err)
	}
}
