package teamcard

import (
	"github.com/a-h/templ"
	"github.com/louisbranch/teamdocs/internal/platform/icons"
)

// Placement selects which responsive photo slot an image fills.
type Placement int

const (
	// PlacementWide is shown beside the text on wide viewports.
	PlacementWide Placement = iota
	// PlacementCompact is shown above the text on narrow viewports.
	PlacementCompact
)

func (p Placement) String() string {
	switch p {
	case PlacementWide:
		return "wide"
	case PlacementCompact:
		return "compact"
	default:
		return "unknown"
	}
}

// Fit is the image scaling mode.
type Fit string

// FitCover fills the container and crops overflow.
const FitCover Fit = "cover"

// HeadingLevel is the heading level used for member names.
const HeadingLevel = 3

// TranslatedPagesKey is the message key for the disclosure summary label.
const TranslatedPagesKey = "team.translated_pages"

// Card is the view tree for one profile.
type Card struct {
	Photos    []Photo
	Heading   Heading
	Title     string
	Biography templ.Component
	Badges    []Badge
	// Disclosure is nil when the profile lists no translations.
	Disclosure *Disclosure
}

// Photo is one placement of the profile photo.
type Photo struct {
	Src       string
	Alt       string
	Fit       Fit
	Placement Placement
}

// Heading is the anchored member name.
type Heading struct {
	Level    int
	AnchorID string
	Text     string
}

// Badge is a rendered icon, handle and external link for one identifier.
type Badge struct {
	Name     string
	Icon     icons.ID
	Href     string
	Text     string
	LabelKey string
	Owner    string
}

// Disclosure is the collapsible translated-pages list.
type Disclosure struct {
	LabelKey string
	Count    int
	Items    []DisclosureItem
}

// DisclosureItem links to one translated page.
type DisclosureItem struct {
	// Key identifies the item within the list. It is the target URL, which
	// stays unique even when two pages share a source title.
	Key  string
	Href string
	Text string
}

// Build validates p and returns its card tree. Nothing is produced when
// validation fails.
func Build(p Profile) (Card, error) {
	if err := Validate(p); err != nil {
		return Card{}, err
	}

	card := Card{
		Photos: []Photo{
			{Src: p.Photo, Alt: p.Name, Fit: FitCover, Placement: PlacementWide},
			{Src: p.Photo, Alt: p.Name, Fit: FitCover, Placement: PlacementCompact},
		},
		Heading: Heading{
			Level:    HeadingLevel,
			AnchorID: p.Name,
			Text:     p.Name,
		},
		Title:      p.Title,
		Biography:  p.Biography,
		Badges:     buildBadges(p),
		Disclosure: buildDisclosure(p.Translations),
	}
	return card, nil
}

func buildDisclosure(translations []Translation) *Disclosure {
	if len(translations) == 0 {
		return nil
	}
	items := make([]DisclosureItem, 0, len(translations))
	for _, tr := range translations {
		text := tr.TranslatedTitle
		if text == "" {
			text = tr.Title
		}
		items = append(items, DisclosureItem{
			Key:  tr.URL,
			Href: tr.URL,
			Text: text,
		})
	}
	return &Disclosure{
		LabelKey: TranslatedPagesKey,
		Count:    len(items),
		Items:    items,
	}
}
