package teamcard

import (
	"errors"
	"strings"

	"github.com/a-h/templ"
)

// ErrMissingRequiredField is matched by every validation failure.
var ErrMissingRequiredField = errors.New("missing required profile field")

// Required field names reported by MissingFieldError.
const (
	FieldName      = "name"
	FieldTitle     = "title"
	FieldBiography = "biography"
)

// Translation is one documentation page the member translated.
type Translation struct {
	// Title is the page title in the source language.
	Title string
	// TranslatedTitle is the localized page title; empty falls back to Title.
	TranslatedTitle string
	// URL is the same-site link to the translated page.
	URL string
}

// Profile is the input record for one card. Empty optional strings mean the
// field is absent.
type Profile struct {
	Name      string
	Title     string
	Biography templ.Component
	Photo     string

	Twitter  string
	Threads  string
	GitHub   string
	Personal string

	Translations []Translation
}

// MissingFieldError reports the required fields absent from a profile.
type MissingFieldError struct {
	Fields []string
	// Subject is the best available identifier for the failing profile.
	Subject string
}

func (e *MissingFieldError) Error() string {
	return "expected " + strings.Join(e.Fields, ", ") + " for " + e.Subject
}

// Is lets errors.Is match ErrMissingRequiredField.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingRequiredField
}

// Validate checks that Name, Title and Biography are present.
func Validate(p Profile) error {
	var missing []string
	if p.Name == "" {
		missing = append(missing, FieldName)
	}
	if p.Title == "" {
		missing = append(missing, FieldTitle)
	}
	if p.Biography == nil {
		missing = append(missing, FieldBiography)
	}
	if len(missing) == 0 {
		return nil
	}
	return &MissingFieldError{Fields: missing, Subject: subject(p)}
}

func subject(p Profile) string {
	switch {
	case p.Name != "":
		return p.Name
	case p.Title != "":
		return p.Title
	default:
		return "unknown"
	}
}
