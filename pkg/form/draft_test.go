package form

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dreamweaver/pkg/schema"
)

func TestNewDraftDefaults(t *testing.T) {
	p := NewDraft().Params()
	assert.Equal(t, schema.StoryParams{
		Title:      "",
		Genre:      schema.GenreFantasy,
		Characters: DefaultCharacters,
		Length:     schema.LengthShort,
		Language:   schema.LanguageEnglish,
	}, p)
	require.NoError(t, p.Validate())
}

func TestDraftSetUpdatesOnlyOneField(t *testing.T) {
	tests := []struct {
		field string
		value string
		apply func(p *schema.StoryParams)
	}{
		{FieldTitle, "My Tale", func(p *schema.StoryParams) { p.Title = "My Tale" }},
		{FieldGenre, "Sci-Fi", func(p *schema.StoryParams) { p.Genre = schema.GenreSciFi }},
		{FieldCharacters, "Two robots", func(p *schema.StoryParams) { p.Characters = "Two robots" }},
		{FieldLength, "Long (approx. 1000 words)", func(p *schema.StoryParams) { p.Length = schema.LengthLong }},
		{FieldLanguage, "Urdu", func(p *schema.StoryParams) { p.Language = schema.LanguageUrdu }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			d := NewDraft()
			want := d.Params()
			tt.apply(&want)

			require.NoError(t, d.Set(tt.field, tt.value))
			assert.Equal(t, want, d.Params())
		})
	}
}

func TestDraftSetRejectsInvalid(t *testing.T) {
	d := NewDraft()
	before := d.Params()

	for _, c := range [][2]string{
		{FieldGenre, "Western"},
		{FieldLength, "Short"},
		{FieldLanguage, "French"},
		{"mood", "gloomy"},
	} {
		err := d.Set(c[0], c[1])
		assert.ErrorIs(t, err, schema.ErrInvalidParams, c[0])
	}
	assert.Equal(t, before, d.Params())
}

func TestParamsIsACopy(t *testing.T) {
	d := NewDraft()
	p := d.Params()
	require.NoError(t, d.Set(FieldTitle, "Changed later"))
	assert.Empty(t, p.Title)
}

func TestFromValues(t *testing.T) {
	d, err := FromValues(url.Values{
		"genre":    {"Horror"},
		"language": {"Urdu"},
		"ignored":  {"x"},
	})
	require.NoError(t, err)
	p := d.Params()
	assert.Equal(t, schema.GenreHorror, p.Genre)
	assert.Equal(t, schema.LanguageUrdu, p.Language)
	assert.Equal(t, DefaultCharacters, p.Characters)
	assert.Equal(t, schema.LengthShort, p.Length)

	d, err = FromValues(url.Values{"genre": {"Western"}, "title": {"Kept"}})
	assert.ErrorIs(t, err, schema.ErrInvalidParams)
	assert.Equal(t, "Kept", d.Params().Title)
	assert.Equal(t, schema.GenreFantasy, d.Params().Genre)
}
