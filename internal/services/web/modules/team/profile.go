package team

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/teamdocs/internal/platform/assets/catalog"
	"github.com/louisbranch/teamdocs/internal/services/team/storage"
	"github.com/louisbranch/teamdocs/internal/teamcard"
)

// ToProfile maps a stored member onto the card input. An empty biography maps
// to a nil component so the card reports it as missing. Members without a
// photo get a placeholder picked from their slug.
func ToProfile(member storage.Member) teamcard.Profile {
	profile := teamcard.Profile{
		Name:     member.Name,
		Title:    member.Title,
		Photo:    member.Photo,
		Twitter:  member.Twitter,
		Threads:  member.Threads,
		GitHub:   member.GitHub,
		Personal: member.Personal,
	}
	if strings.TrimSpace(profile.Photo) == "" {
		if placeholder, err := catalog.PlaceholderPhoto(member.Slug); err == nil {
			profile.Photo = placeholder
		}
	}
	if paragraphs := Paragraphs(member.Biography); len(paragraphs) > 0 {
		profile.Biography = biography(paragraphs)
	}
	for _, tr := range member.Translations {
		profile.Translations = append(profile.Translations, teamcard.Translation{
			Title:           tr.Title,
			TranslatedTitle: tr.TranslatedTitle,
			URL:             tr.URL,
		})
	}
	return profile
}

// Paragraphs splits text on blank lines and drops empty paragraphs.
func Paragraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var out []string
	for _, block := range strings.Split(text, "\n\n") {
		if block = strings.TrimSpace(block); block != "" {
			out = append(out, block)
		}
	}
	return out
}

func biography(paragraphs []string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		for _, paragraph := range paragraphs {
			if _, err := io.WriteString(w, "<p>"+templ.EscapeString(paragraph)+"</p>"); err != nil {
				return err
			}
		}
		return nil
	})
}
