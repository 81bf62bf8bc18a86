// Package oracle provides the Gemini-backed implementation of the text
// oracle the news pipeline relies on for query expansion, relevance
// classification and sentiment scoring.
package oracle

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/smadan/folionews"
)

var _ folionews.Oracle = (*Gemini)(nil)

// DefaultModel is used when no model is configured. Classification and
// scoring are short, factual completions; the flash tier is plenty.
const DefaultModel = "gemini-2.5-flash"

// Gemini submits text prompts to a Gemini model and returns its text reply.
// The client reads its API key from the GEMINI_API_KEY environment variable.
type Gemini struct {
	Model  string // DefaultModel when empty
	client *genai.Client
}

// NewGemini initializes the Gemini client.
func NewGemini(ctx context.Context) (*Gemini, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot initialize Gemini client: %w", err)
	}
	return &Gemini{client: client}, nil
}

func (g *Gemini) model() string {
	if g.Model == "" {
		return DefaultModel
	}
	return g.Model
}

// Generate submits the prompt and returns the first non-empty text reply.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		// classifications must be repeatable
		Temperature: genai.Ptr[float32](0),
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model(), genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}

	var reply strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			reply.WriteString(part.Text)
		}
		if reply.Len() > 0 {
			break
		}
	}
	if reply.Len() == 0 {
		return "", fmt.Errorf("no text in model response")
	}
	return reply.String(), nil
}
