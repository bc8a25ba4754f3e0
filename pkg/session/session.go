// Package session holds the page state: which view is shown, whether a
// generation is in flight, and the last story or error.
package session

import (
	"cmp"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/segmentio/ksuid"

	"dreamweaver/pkg/form"
	"dreamweaver/pkg/schema"
	"dreamweaver/pkg/story"
)

// ErrBusy is returned by Submit while another generation is in flight.
var ErrBusy = errors.New("a story is already being generated")

const FallbackError = "Something went wrong while generating the story."

// Message is the text shown for err.
func Message(err error) string {
	return cmp.Or(err.Error(), FallbackError)
}

type View string

const (
	ViewForm  View = "form"
	ViewStory View = "story"
)

// StoryGenerator is satisfied by *story.Generator.
type StoryGenerator interface {
	GenerateStory(ctx context.Context, p schema.StoryParams) (string, error)
}

// State is a point-in-time copy of the controller.
type State struct {
	Loading  bool                   `json:"loading"`
	Error    string                 `json:"error,omitempty"`
	Story    *schema.GeneratedStory `json:"story,omitempty"`
	Language schema.Language        `json:"language"`
	Draft    schema.StoryParams     `json:"draft"`
	View     View                   `json:"view"`
}

type Controller struct {
	gen StoryGenerator
	now func() time.Time

	mu       sync.Mutex
	loading  bool
	err      string
	story    *schema.GeneratedStory
	language schema.Language
	draft    *form.Draft
}

func NewController(gen StoryGenerator) *Controller {
	return &Controller{
		gen:      gen,
		now:      time.Now,
		language: schema.LanguageEnglish,
		draft:    form.NewDraft(),
	}
}

// SetClock replaces the time source used for story timestamps.
func (c *Controller) SetClock(now func() time.Time) {
	c.now = now
}

// Submit runs one generation for p. While a generation is pending it returns
// ErrBusy without calling the generator. The returned error is also recorded
// in the state for rendering.
func (c *Controller) Submit(ctx context.Context, p schema.StoryParams) (*schema.GeneratedStory, error) {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return nil, ErrBusy
	}
	c.loading = true
	c.err = ""
	c.story = nil
	c.language = p.Language
	c.draft = form.FromParams(p)
	submitted := c.now()
	c.mu.Unlock()

	text, err := c.gen.GenerateStory(ctx, p)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.err = Message(err)
		return nil, err
	}

	generated := &schema.GeneratedStory{
		ID:        ksuid.New().String(),
		Title:     story.InferTitle(p, text),
		Content:   text,
		Language:  p.Language,
		Timestamp: submitted.UnixMilli(),
	}
	c.story = generated
	log.Info("story generated", "id", generated.ID, "title", generated.Title, "chars", len(text))

	copied := *generated
	return &copied, nil
}

// Reject records err as the visible error for p without running a generation.
// Used for input that never reaches the generator.
func (c *Controller) Reject(p schema.StoryParams, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loading {
		return
	}
	c.story = nil
	c.draft = form.FromParams(p)
	c.err = Message(err)
}

// Reset clears the story and error and returns to the form. Calling it again has no further effect.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.story = nil
	c.err = ""
}

// UpdateDraft sets one draft field while the form is shown.
func (c *Controller) UpdateDraft(field, value string) (schema.StoryParams, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	err := c.draft.Set(field, value)
	return c.draft.Params(), err
}

func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := State{
		Loading:  c.loading,
		Error:    c.err,
		Language: c.language,
		Draft:    c.draft.Params(),
		View:     ViewForm,
	}
	if c.story != nil {
		copied := *c.story
		s.Story = &copied
		s.View = ViewStory
	}
	return s
}
