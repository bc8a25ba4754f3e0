package story

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dreamweaver/pkg/inference"
	"dreamweaver/pkg/schema"
)

type mockInferencer struct {
	mock.Mock
}

func (m *mockInferencer) Infer(ctx context.Context, params *inference.Params, user string) (string, error) {
	args := m.Called(ctx, params, user)
	return args.String(0), args.Error(1)
}

func owlParams() schema.StoryParams {
	return schema.StoryParams{
		Genre:      schema.GenreFantasy,
		Characters: "A brave young explorer and a wise old owl",
		Length:     schema.LengthShort,
		Language:   schema.LanguageEnglish,
	}
}

func TestBuildPrompt(t *testing.T) {
	p := owlParams()
	prompt := BuildPrompt(p)

	assert.Contains(t, prompt, "1. **Title**: "+inventTitle)
	assert.Contains(t, prompt, "2. **Genre**: Fantasy")
	assert.Contains(t, prompt, "3. **Main Characters**: A brave young explorer and a wise old owl")
	assert.Contains(t, prompt, "4. **Length**: Short (approx. 300 words)")
	assert.Contains(t, prompt, "5. **Language**: English")
	assert.Contains(t, prompt, "[TITLE]\n\n[STORY CONTENT]")
	assert.Equal(t, prompt, BuildPrompt(p), "prompt must be deterministic")

	p.Title = "The Mystery of the Lost Key"
	p.Language = schema.LanguageUrdu
	prompt = BuildPrompt(p)
	assert.Contains(t, prompt, "1. **Title**: The Mystery of the Lost Key")
	assert.NotContains(t, prompt, inventTitle)
	assert.Contains(t, prompt, "5. **Language**: Urdu")
}

func TestGenerateStory_Success(t *testing.T) {
	inf := new(mockInferencer)
	p := owlParams()
	want := &inference.Params{Model: "gemini-test", Temperature: 0.8, TopK: 40, TopP: 0.95}
	inf.On("Infer", mock.Anything, want, BuildPrompt(p)).Return("[The Owl's Secret]\n\nOnce upon a time...", nil).Once()

	got, err := NewGenerator(inf, "gemini-test").GenerateStory(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, "[The Owl's Secret]\n\nOnce upon a time...", got)
	inf.AssertExpectations(t)
}

func TestGenerateStory_Errors(t *testing.T) {
	quota := errors.New("quota exceeded")
	tests := []struct {
		name    string
		text    string
		err     error
		wantErr error
	}{
		{name: "empty text", text: "", wantErr: ErrEmptyResponse},
		{name: "whitespace text", text: " \n\t\n", wantErr: ErrEmptyResponse},
		{name: "provider error passes through", err: quota, wantErr: quota},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inf := new(mockInferencer)
			inf.On("Infer", mock.Anything, mock.Anything, mock.Anything).Return(tt.text, tt.err).Once()

			got, err := NewGenerator(inf, "").GenerateStory(context.Background(), owlParams())
			require.Error(t, err)
			assert.Empty(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantErr.Error(), err.Error())
			inf.AssertNumberOfCalls(t, "Infer", 1)
		})
	}

	assert.Equal(t, "No story was generated. Please try again.", ErrEmptyResponse.Error())
}

func TestInferTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		text  string
		want  string
	}{
		{name: "bracketed first line", text: "[The Lost Key]\n\nIt was raining.", want: "The Lost Key"},
		{name: "leading blank lines", text: "\n   \n  [The Owl's Secret]  \nOnce upon a time...", want: "The Owl's Secret"},
		{name: "unbracketed first line", text: "A Quiet Harbor\nThe boats rocked.", want: "A Quiet Harbor"},
		{name: "inner brackets removed", text: "[The [Second] Door]\nbody", want: "The Second Door"},
		{name: "user title wins", title: "My Tale", text: "[The Lost Key]\nbody", want: "My Tale"},
		{name: "user title trimmed", title: "  My Tale  ", text: "", want: "My Tale"},
		{name: "blank user title ignored", title: "   ", text: "[Found]\nbody", want: "Found"},
		{name: "only brackets", text: "[]\nbody", want: DefaultTitle},
		{name: "no lines", text: "", want: DefaultTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := owlParams()
			p.Title = tt.title
			assert.Equal(t, tt.want, InferTitle(p, tt.text))
		})
	}
}
