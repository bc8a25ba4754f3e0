// Package story turns story parameters into a model call and the model output back into a story.
package story

import (
	"cmp"
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/log"

	"dreamweaver/pkg/inference"
	"dreamweaver/pkg/schema"
	"dreamweaver/pkg/utils"
)

// ErrEmptyResponse is returned when the provider call succeeds but carries no text.
var ErrEmptyResponse = errors.New("No story was generated. Please try again.")

const DefaultTitle = "My Story"

// Sampling used for every story request.
const (
	Temperature = 0.8
	TopK        = 40
	TopP        = 0.95
)

type Generator struct {
	inf   inference.Inferencer
	model string
}

// NewGenerator wraps inf. An empty model leaves the choice to the inferencer.
func NewGenerator(inf inference.Inferencer, model string) *Generator {
	return &Generator{inf: inf, model: model}
}

// GenerateStory sends the prompt for p and returns the raw model text.
// Provider errors are returned unmodified; a blank answer yields ErrEmptyResponse.
func (g *Generator) GenerateStory(ctx context.Context, p schema.StoryParams) (string, error) {
	prompt := BuildPrompt(p)
	params := &inference.Params{
		Model:       g.model,
		Temperature: Temperature,
		TopK:        TopK,
		TopP:        TopP,
	}

	log.Debug("generating story", "genre", p.Genre, "length", p.Length.Label(), "characters", utils.LimitStr(p.Characters, 50))
	text, err := g.inf.Infer(ctx, params, prompt)
	if err != nil {
		log.Error("Error generating story", "genre", p.Genre, "language", p.Language, "error", err)
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		log.Error("Error generating story", "genre", p.Genre, "language", p.Language, "error", ErrEmptyResponse)
		return "", ErrEmptyResponse
	}

	return text, nil
}

// InferTitle picks the display title: the user's title when given, otherwise the
// first non-blank line of text with square brackets removed.
// This relies on the model honouring the [TITLE] convention and is only a heuristic.
func InferTitle(p schema.StoryParams, text string) string {
	if title := strings.TrimSpace(p.Title); title != "" {
		return title
	}
	for line := range strings.Lines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		title := strings.NewReplacer("[", "", "]", "").Replace(line)
		return cmp.Or(strings.TrimSpace(title), DefaultTitle)
	}
	return DefaultTitle
}
