// Package roster reads the published team roster from TOML.
//
// A roster lists members in display order:
//
//	[[member]]
//	slug = "gaearon"
//	name = "Dan Abramov"
//	title = "Independent Engineer"
//	photo = "/images/team/gaearon.jpg"
//	biography = """
//	First paragraph.
//
//	Second paragraph.
//	"""
//	github = "gaearon"
//
//	[[member.translated]]
//	title = "Quick Start"
//	translated_title = "빠른 시작"
//	url = "/ko/learn"
package roster

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/louisbranch/teamdocs/internal/services/team/storage"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid is matched by every roster validation failure.
var ErrInvalid = errors.New("invalid roster")

type file struct {
	Members []memberEntry `toml:"member"`
}

type memberEntry struct {
	Slug       string             `toml:"slug"`
	Name       string             `toml:"name"`
	Title      string             `toml:"title"`
	Photo      string             `toml:"photo"`
	Biography  string             `toml:"biography"`
	Twitter    string             `toml:"twitter"`
	Threads    string             `toml:"threads"`
	GitHub     string             `toml:"github"`
	Personal   string             `toml:"personal"`
	Translated []translationEntry `toml:"translated"`
}

type translationEntry struct {
	Title           string `toml:"title"`
	TranslatedTitle string `toml:"translated_title"`
	URL             string `toml:"url"`
}

// LoadFile reads and parses the roster at path.
func LoadFile(path string) ([]storage.Member, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster %s: %w", path, err)
	}
	members, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return members, nil
}

// Parse decodes a roster and validates every member. Unknown keys are
// rejected so typos in handle names do not silently drop links.
func Parse(data []byte) ([]storage.Member, error) {
	var parsed file
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&parsed); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%w: %s", ErrInvalid, strict.String())
		}
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalid, err)
	}

	members := make([]storage.Member, 0, len(parsed.Members))
	seen := make(map[string]int, len(parsed.Members))
	var problems []error
	for i, entry := range parsed.Members {
		member, err := Normalize(entry.toMember(i))
		if err != nil {
			problems = append(problems, fmt.Errorf("member %d: %w", i+1, err))
			continue
		}
		if first, ok := seen[member.Slug]; ok {
			problems = append(problems, fmt.Errorf("member %d: slug %q already used by member %d", i+1, member.Slug, first+1))
			continue
		}
		seen[member.Slug] = i
		members = append(members, member)
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, errors.Join(problems...))
	}
	return members, nil
}

func (e memberEntry) toMember(position int) storage.Member {
	member := storage.Member{
		Slug:      e.Slug,
		Position:  position,
		Name:      e.Name,
		Title:     e.Title,
		Photo:     e.Photo,
		Biography: e.Biography,
		Twitter:   e.Twitter,
		Threads:   e.Threads,
		GitHub:    e.GitHub,
		Personal:  e.Personal,
	}
	for _, tr := range e.Translated {
		member.Translations = append(member.Translations, storage.Translation{
			Title:           tr.Title,
			TranslatedTitle: tr.TranslatedTitle,
			URL:             tr.URL,
		})
	}
	return member
}

// Normalize trims member fields and checks that the card can render. Handles
// are kept verbatim apart from surrounding whitespace.
func Normalize(member storage.Member) (storage.Member, error) {
	member.Slug = strings.TrimSpace(member.Slug)
	member.Name = strings.TrimSpace(member.Name)
	member.Title = strings.TrimSpace(member.Title)
	member.Photo = strings.TrimSpace(member.Photo)
	member.Biography = strings.TrimSpace(strings.ReplaceAll(member.Biography, "\r\n", "\n"))
	member.Twitter = strings.TrimSpace(member.Twitter)
	member.Threads = strings.TrimSpace(member.Threads)
	member.GitHub = strings.TrimSpace(member.GitHub)
	member.Personal = strings.TrimSpace(member.Personal)

	var missing []string
	if member.Slug == "" {
		missing = append(missing, "slug")
	}
	if member.Name == "" {
		missing = append(missing, "name")
	}
	if member.Title == "" {
		missing = append(missing, "title")
	}
	if member.Biography == "" {
		missing = append(missing, "biography")
	}
	if len(missing) > 0 {
		return storage.Member{}, fmt.Errorf("%w: missing %s", ErrInvalid, strings.Join(missing, ", "))
	}

	member.Translations = append([]storage.Translation(nil), member.Translations...)
	titles := make(map[string]struct{}, len(member.Translations))
	for i := range member.Translations {
		tr := &member.Translations[i]
		tr.Title = strings.TrimSpace(tr.Title)
		tr.TranslatedTitle = strings.TrimSpace(tr.TranslatedTitle)
		tr.URL = strings.TrimSpace(tr.URL)
		if tr.Title == "" || tr.URL == "" {
			return storage.Member{}, fmt.Errorf("%w: translation %d of %s needs title and url", ErrInvalid, i+1, member.Slug)
		}
		if _, ok := titles[tr.Title]; ok {
			return storage.Member{}, fmt.Errorf("%w: %s lists translation %q twice", ErrInvalid, member.Slug, tr.Title)
		}
		titles[tr.Title] = struct{}{}
	}
	return member, nil
}
