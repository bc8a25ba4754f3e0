package inference

import (
	"cmp"
	"context"

	"github.com/charmbracelet/log"
	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-3-flash-preview"

type GeminiInferencer struct {
	client *genai.Client
	model  string
}

// NewGeminiInferencer creates a new inferencer backed by the Gemini API.
func NewGeminiInferencer(ctx context.Context, config *genai.ClientConfig, model string) (*GeminiInferencer, error) {
	if config.Backend == genai.BackendUnspecified {
		config.Backend = genai.BackendGeminiAPI
	}
	client, err := genai.NewClient(ctx, config)
	if err != nil {
		return nil, err
	}
	return &GeminiInferencer{
		client: client,
		model:  cmp.Or(model, DefaultGeminiModel),
	}, nil
}

func (o *GeminiInferencer) Model() string {
	return o.model
}

// Infer sends the prompt to generateContent and returns the concatenated text parts.
// API errors are returned as-is so their message reaches the caller unchanged.
func (o *GeminiInferencer) Infer(ctx context.Context, params *Params, user string) (string, error) {
	if params == nil {
		params = new(Params)
	}
	config := new(genai.GenerateContentConfig)
	if params.Temperature != 0 {
		config.Temperature = genai.Ptr(float32(params.Temperature))
	}
	if params.TopK != 0 {
		config.TopK = genai.Ptr(float32(params.TopK))
	}
	if params.TopP != 0 {
		config.TopP = genai.Ptr(float32(params.TopP))
	}

	model := cmp.Or(params.Model, o.model)
	result, err := o.client.Models.GenerateContent(ctx, model, genai.Text(user), config)
	if err != nil {
		log.Error("gemini generateContent failed", "model", model, "error", err)
		return "", err
	}
	if result.UsageMetadata != nil {
		log.Debug("gemini usage", "model", model, "prompt_tokens", result.UsageMetadata.PromptTokenCount, "total_tokens", result.UsageMetadata.TotalTokenCount)
	}

	return result.Text(), nil
}
