package ollama

import (
	"context"
	"fmt"

	"projdex/internal/domain"
	"projdex/internal/ports"
)

// DefaultModel is small enough to tag hundreds of projects on a
// laptop without heating the room.
const DefaultModel = "gemma3:1b"

const taggerSystemPrompt = "You are a technical project tagger. " +
	"Output ONLY comma-separated tags, no explanations or additional text."

// Tagger implements ports.TagSource on top of Client.
type Tagger struct {
	client *Client
	model  string
}

var _ ports.TagSource = (*Tagger)(nil)

// TaggerOption configures the Tagger.
type TaggerOption func(*Tagger)

// WithModel sets the model used for tag generation.
func WithModel(model string) TaggerOption {
	return func(t *Tagger) {
		if model != "" {
			t.model = model
		}
	}
}

// NewTagger creates a tag source backed by the given client.
func NewTagger(client *Client, opts ...TaggerOption) *Tagger {
	t := &Tagger{client: client, model: DefaultModel}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// GenerateTags asks the model for 3-5 technical tags and normalizes
// the raw completion into clean lowercase tokens.
func (t *Tagger) GenerateTags(ctx context.Context, name, path string) ([]string, error) {
	prompt := fmt.Sprintf(
		"Generate 3-5 technical tags for this project named '%s'. Description: %s. "+
			"Output ONLY comma-separated tags, no explanations or additional text.",
		name, path,
	)

	resp, err := t.client.Generate(ctx, GenerateRequest{
		Model:  t.model,
		Prompt: prompt,
		System: taggerSystemPrompt,
	})
	if err != nil {
		return nil, err
	}
	return domain.ParseTags(resp.Response), nil
}

// IsAvailable reports whether the Ollama service can be reached.
func (t *Tagger) IsAvailable(ctx context.Context) bool {
	return t.client.CheckAvailability(ctx)
}
