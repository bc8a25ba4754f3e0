package form

import (
	"fmt"
	"net/url"

	"dreamweaver/pkg/schema"
)

const DefaultCharacters = "A brave young explorer and a wise old owl"

// Field names match the html input names.
const (
	FieldTitle      = "title"
	FieldGenre      = "genre"
	FieldCharacters = "characters"
	FieldLength     = "length"
	FieldLanguage   = "language"
)

var Fields = []string{FieldTitle, FieldGenre, FieldCharacters, FieldLength, FieldLanguage}

// Draft holds the in-progress story parameters. Each field is an independent slot.
type Draft struct {
	params schema.StoryParams
}

func NewDraft() *Draft {
	return &Draft{params: schema.StoryParams{
		Genre:      schema.GenreFantasy,
		Characters: DefaultCharacters,
		Length:     schema.LengthShort,
		Language:   schema.LanguageEnglish,
	}}
}

// FromParams seeds a draft from previously submitted parameters.
func FromParams(p schema.StoryParams) *Draft {
	return &Draft{params: p}
}

// FromValues applies every known field present in v on top of the defaults.
// The first invalid value is reported; valid fields are still applied.
func FromValues(v url.Values) (*Draft, error) {
	d := NewDraft()
	var firstErr error
	for _, field := range Fields {
		if !v.Has(field) {
			continue
		}
		if err := d.Set(field, v.Get(field)); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return d, firstErr
}

// Set updates one field. Unknown fields and invalid enum values leave the draft untouched.
func (d *Draft) Set(field, value string) error {
	switch field {
	case FieldTitle:
		d.params.Title = value
	case FieldCharacters:
		d.params.Characters = value
	case FieldGenre:
		g, err := schema.ParseGenre(value)
		if err != nil {
			return err
		}
		d.params.Genre = g
	case FieldLength:
		l, err := schema.ParseLength(value)
		if err != nil {
			return err
		}
		d.params.Length = l
	case FieldLanguage:
		l, err := schema.ParseLanguage(value)
		if err != nil {
			return err
		}
		d.params.Language = l
	default:
		return fmt.Errorf("%w: unknown field %q", schema.ErrInvalidParams, field)
	}
	return nil
}

// Params returns a copy of the current draft for submission.
func (d *Draft) Params() schema.StoryParams {
	return d.params
}
