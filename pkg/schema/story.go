package schema

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidParams = errors.New("invalid story parameters")

type Genre string

const (
	GenreFantasy   Genre = "Fantasy"
	GenreHorror    Genre = "Horror"
	GenreRomance   Genre = "Romance"
	GenreAdventure Genre = "Adventure"
	GenreSciFi     Genre = "Sci-Fi"
	GenreMoral     Genre = "Moral Story"
	GenreKids      Genre = "Kids Story"
)

// Genres lists every genre in display order.
var Genres = []Genre{GenreFantasy, GenreHorror, GenreRomance, GenreAdventure, GenreSciFi, GenreMoral, GenreKids}

func ParseGenre(s string) (Genre, error) {
	for _, g := range Genres {
		if string(g) == s {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: unknown genre %q", ErrInvalidParams, s)
}

type Length string

const (
	LengthShort  Length = "Short (approx. 300 words)"
	LengthMedium Length = "Medium (approx. 600 words)"
	LengthLong   Length = "Long (approx. 1000 words)"
)

var Lengths = []Length{LengthShort, LengthMedium, LengthLong}

func ParseLength(s string) (Length, error) {
	for _, l := range Lengths {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: unknown length %q", ErrInvalidParams, s)
}

// Label is the short name shown on the length picker.
func (l Length) Label() string {
	label, _, _ := strings.Cut(string(l), " ")
	return label
}

type Language string

const (
	LanguageEnglish Language = "English"
	LanguageUrdu    Language = "Urdu"
)

var Languages = []Language{LanguageEnglish, LanguageUrdu}

func ParseLanguage(s string) (Language, error) {
	for _, l := range Languages {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: unknown language %q", ErrInvalidParams, s)
}

// Code returns the BCP 47 tag used for the html lang attribute.
func (l Language) Code() string {
	if l == LanguageUrdu {
		return "ur"
	}
	return "en"
}

func (l Language) Dir() string {
	if l == LanguageUrdu {
		return "rtl"
	}
	return "ltr"
}

type StoryParams struct {
	Title      string   `json:"title,omitempty" jsonschema_description:"Optional story title; the model invents one when empty"`
	Genre      Genre    `json:"genre" jsonschema:"enum=Fantasy,enum=Horror,enum=Romance,enum=Adventure,enum=Sci-Fi,enum=Moral Story,enum=Kids Story" jsonschema_description:"Story genre"`
	Characters string   `json:"characters" jsonschema:"minLength=1" jsonschema_description:"Main characters: protagonists, antagonists or sidekicks"`
	Length     Length   `json:"length" jsonschema:"enum=Short (approx. 300 words),enum=Medium (approx. 600 words),enum=Long (approx. 1000 words)" jsonschema_description:"Target story length"`
	Language   Language `json:"language" jsonschema:"enum=English,enum=Urdu" jsonschema_description:"Language the story is written in"`
}

// Validate checks that every enum holds a known value and characters is not blank.
func (p StoryParams) Validate() error {
	if _, err := ParseGenre(string(p.Genre)); err != nil {
		return err
	}
	if _, err := ParseLength(string(p.Length)); err != nil {
		return err
	}
	if _, err := ParseLanguage(string(p.Language)); err != nil {
		return err
	}
	if strings.TrimSpace(p.Characters) == "" {
		return fmt.Errorf("%w: characters are required", ErrInvalidParams)
	}
	return nil
}

type GeneratedStory struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Language  Language `json:"language"`
	Timestamp int64    `json:"timestamp"`
}
