package main

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

const (
	minVocabularyCount     = 2
	maxVocabularyCount     = 30
	defaultVocabularyCount = 10
)

const vocabularyPrompt = `Produce vocabulary for a word puzzle about the topic %q.

Respond with JSON in exactly this shape:
[
  {"word": "EXAMPLE", "clue": "A short definition of the word"},
  ...
]

Rules:
- Exactly %d entries.
- Each word is a single English word of 3 to 15 letters, A-Z only, no spaces or hyphens.
- Each clue is one sentence, does not contain the word itself.
- Respond ONLY with the JSON array, no commentary or markdown.`

// GenerateVocabulary asks Gemini for word/clue pairs about a topic.
func (g *GeminiClient) GenerateVocabulary(ctx context.Context, topic string, count int) ([]VocabEntry, error) {
	if count < minVocabularyCount || count > maxVocabularyCount {
		count = defaultVocabularyCount
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName,
		[]*genai.Content{{
			Role: "user",
			Parts: []*genai.Part{
				{Text: fmt.Sprintf(vocabularyPrompt, topic, count)},
			},
		}},
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(float32(0.7)),
			TopP:             genai.Ptr(float32(1)),
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("empty gemini response")
	}

	var vocab []VocabEntry
	if err := json.Unmarshal([]byte(text), &vocab); err != nil {
		return nil, fmt.Errorf("parse vocabulary JSON: %w\nraw response: %s", err, text)
	}

	if len(vocab) < minVocabularyCount {
		return nil, fmt.Errorf("gemini returned %d entries, need at least %d", len(vocab), minVocabularyCount)
	}

	return vocab, nil
}
