package inference

import (
	"cmp"
	"context"

	"github.com/charmbracelet/log"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIInferencer implements Inferencer using OpenAI's official Go SDK.
// It also serves any OpenAI-compatible endpoint through ChangeBaseURL.
type OpenAIInferencer struct {
	client *openai.Client
	apiKey string
	model  string
}

// NewOpenAIInferencer creates a new inferencer instance using OpenAI client.
func NewOpenAIInferencer(apiKey string, model string, opts ...option.RequestOption) *OpenAIInferencer {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	client := openai.NewClient(opts...)
	return &OpenAIInferencer{
		client: &client,
		apiKey: apiKey,
		model:  model,
	}
}

func (o *OpenAIInferencer) ChangeBaseURL(baseURL string) {
	client := openai.NewClient(
		option.WithAPIKey(o.apiKey),
		option.WithBaseURL(baseURL),
	)
	o.client = &client
}

func (o *OpenAIInferencer) SetModel(model string) {
	o.model = model
}

func (o *OpenAIInferencer) Model() string {
	return o.model
}

// Infer sends the prompt as a single user message. TopK has no chat-completions
// equivalent and is ignored.
func (o *OpenAIInferencer) Infer(ctx context.Context, params *Params, user string) (string, error) {
	if params == nil {
		params = new(Params)
	}
	req := openai.ChatCompletionNewParams{
		Model: cmp.Or(params.Model, o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(user),
		},
	}
	if params.Temperature != 0 {
		req.Temperature = openai.Float(params.Temperature)
	}
	if params.TopP != 0 {
		req.TopP = openai.Float(params.TopP)
	}

	resp, err := o.client.Chat.Completions.New(ctx, req)
	if err != nil {
		log.Error("openai chat completion failed", "model", req.Model, "error", err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}
