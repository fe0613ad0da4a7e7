package icons

import (
	"strings"
)

// ID identifies one glyph in the catalog.
type ID int

const (
	// Unspecified is the zero value and has no glyph.
	Unspecified ID = iota
	// Twitter is the microblogging bird glyph.
	Twitter
	// Threads is the Threads "@" glyph.
	Threads
	// GitHub is the code-hosting octocat glyph.
	GitHub
	// Link is the generic chain-link glyph used for personal sites.
	Link
)

var idNames = map[ID]string{
	Unspecified: "ICON_UNSPECIFIED",
	Twitter:     "ICON_TWITTER",
	Threads:     "ICON_THREADS",
	GitHub:      "ICON_GITHUB",
	Link:        "ICON_LINK",
}

// String returns the stable identifier name.
func (id ID) String() string {
	if name, ok := idNames[id]; ok {
		return name
	}
	return "ICON_UNKNOWN"
}

// Definition describes a catalog entry.
type Definition struct {
	ID          ID
	Name        string
	Description string
}

var catalog = []Definition{
	{
		ID:          Twitter,
		Name:        "Twitter",
		Description: "Twitter/X profile links.",
	},
	{
		ID:          Threads,
		Name:        "Threads",
		Description: "Threads profile links.",
	},
	{
		ID:          GitHub,
		Name:        "GitHub",
		Description: "GitHub profile links.",
	},
	{
		ID:          Link,
		Name:        "Link",
		Description: "Personal websites and other external links.",
	},
}

// Catalog returns a copy of the icon catalog definitions.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	return result
}

// CatalogMarkdown renders the icon catalog as markdown.
func CatalogMarkdown() string {
	var builder strings.Builder
	builder.WriteString("# Icon Catalog\n\n")
	builder.WriteString("| Icon ID | Name | Description |\n")
	builder.WriteString("| --- | --- | --- |\n")
	for _, def := range catalog {
		builder.WriteString("| ")
		builder.WriteString(def.ID.String())
		builder.WriteString(" | ")
		builder.WriteString(def.Name)
		builder.WriteString(" | ")
		builder.WriteString(def.Description)
		builder.WriteString(" |\n")
	}
	return builder.String()
}
