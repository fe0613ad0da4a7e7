package teamcard

import (
	"fmt"

	"github.com/louisbranch/teamdocs/internal/platform/icons"
)

// BadgeSpec declares one optional profile link. Specs are evaluated in
// order; a badge is emitted when Handle returns a non-empty value.
type BadgeSpec struct {
	Name        string
	Icon        icons.ID
	Handle      func(Profile) string
	URLTemplate string
	// LabelKey is the message key for the accessible link label; it receives
	// the member name as its only argument.
	LabelKey string
}

// URL interpolates handle into the badge template verbatim.
func (s BadgeSpec) URL(handle string) string {
	return fmt.Sprintf(s.URLTemplate, handle)
}

var badgeSpecs = []BadgeSpec{
	{
		Name:        "twitter",
		Icon:        icons.Twitter,
		Handle:      func(p Profile) string { return p.Twitter },
		URLTemplate: "https://twitter.com/%s",
		LabelKey:    "team.link.twitter",
	},
	{
		Name:        "threads",
		Icon:        icons.Threads,
		Handle:      func(p Profile) string { return p.Threads },
		URLTemplate: "https://threads.net/%s",
		LabelKey:    "team.link.threads",
	},
	{
		Name:        "github",
		Icon:        icons.GitHub,
		Handle:      func(p Profile) string { return p.GitHub },
		URLTemplate: "https://github.com/%s",
		LabelKey:    "team.link.github",
	},
	{
		Name:        "personal",
		Icon:        icons.Link,
		Handle:      func(p Profile) string { return p.Personal },
		URLTemplate: "https://%s",
		LabelKey:    "team.link.personal",
	},
}

// BadgeSpecs returns a copy of the badge specs in display order.
func BadgeSpecs() []BadgeSpec {
	out := make([]BadgeSpec, len(badgeSpecs))
	copy(out, badgeSpecs)
	return out
}

func buildBadges(p Profile) []Badge {
	var badges []Badge
	for _, spec := range badgeSpecs {
		handle := spec.Handle(p)
		if handle == "" {
			continue
		}
		badges = append(badges, Badge{
			Name:     spec.Name,
			Icon:     spec.Icon,
			Href:     spec.URL(handle),
			Text:     handle,
			LabelKey: spec.LabelKey,
			Owner:    p.Name,
		})
	}
	return badges
}
