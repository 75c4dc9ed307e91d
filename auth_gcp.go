package main

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"
)

const (
	defaultRegion = "us-central1"
	defaultModel  = "gemini-2.5-flash"
)

// GeminiClient wraps the Google GenAI client backing topic-based
// vocabulary generation on Vertex AI.
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

// NewGeminiClient creates a client authenticated with Application Default
// Credentials (GOOGLE_APPLICATION_CREDENTIALS or the ambient service
// account). GEMINI_MODEL overrides the default model.
func NewGeminiClient(ctx context.Context, projectID, region string) (*GeminiClient, error) {
	if region == "" {
		region = defaultRegion
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: region,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		modelName: resolveModel(os.Getenv("GEMINI_MODEL")),
	}, nil
}

// resolveModel picks the vocabulary model, preferring an explicit
// override.
func resolveModel(override string) string {
	if override != "" {
		return override
	}
	return defaultModel
}

// Close releases resources held by the client.
func (g *GeminiClient) Close() error {
	return nil
}
