package teamcard

// Region is the styling for one card region: a class list and an optional
// inline style declaration.
type Region struct {
	Class string
	Style string
}

// Styles maps card regions to presentation. The defaults target the site's
// Tailwind build; other themes can supply their own value.
type Styles struct {
	Card           Region
	Layout         Region
	PhotoWide      Region
	PhotoCompact   Region
	Image          Region
	TextRegion     Region
	Heading        Region
	Title          Region
	LinkRow        Region
	Badge          Region
	BadgeLink      Region
	BadgeIcon      Region
	Disclosure     Region
	DisclosureList Region
}

// DefaultStyles returns the stock card styling.
func DefaultStyles() Styles {
	return Styles{
		Card:           Region{Class: "pb-6 sm:pb-10"},
		Layout:         Region{Class: "flex flex-col sm:flex-row height-auto"},
		PhotoWide:      Region{Class: "hidden sm:block basis-2/5 rounded overflow-hidden relative", Style: "width: 300px; height: 250px"},
		PhotoCompact:   Region{Class: "block w-full sm:hidden flex-grow basis-2/5 rounded overflow-hidden relative", Style: "min-height: 300px"},
		Image:          Region{Class: "absolute inset-0 w-full h-full"},
		TextRegion:     Region{Class: "ps-0 sm:ps-6 basis-3/5 items-start"},
		Heading:        Region{Class: "mb-1 sm:my-0"},
		LinkRow:        Region{Class: "sm:flex sm:flex-row flex-wrap"},
		Badge:          Region{Class: "me-4"},
		BadgeLink:      Region{Class: "hover:text-primary hover:underline dark:text-primary-dark flex flex-row items-center"},
		BadgeIcon:      Region{Class: "pe-1"},
		Disclosure:     Region{Class: "mt-4 translated-list"},
		DisclosureList: Region{Class: "bg-card dark:bg-card-dark"},
	}
}

// PhotoRegion returns the container styling for placement.
func (s Styles) PhotoRegion(placement Placement) Region {
	if placement == PlacementCompact {
		return s.PhotoCompact
	}
	return s.PhotoWide
}
