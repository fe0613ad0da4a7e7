package teamcard

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/a-h/templ"
	"github.com/louisbranch/teamdocs/internal/platform/assets/imagecdn"
	platformi18n "github.com/louisbranch/teamdocs/internal/platform/i18n"
	"github.com/louisbranch/teamdocs/internal/platform/icons"
	"golang.org/x/text/message"
)

// Localizer resolves message keys for the active language.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// ImageFunc renders the photo for one placement.
type ImageFunc func(src string, fit Fit, alt string, placement Placement, class string) templ.Component

// ExternalLinkFunc renders a link that leaves the site.
type ExternalLinkFunc func(href string, ariaLabel string, class string, content templ.Component) templ.Component

// InternalLinkFunc renders a same-site link.
type InternalLinkFunc func(href string, content templ.Component) templ.Component

// HeadingFunc renders a heading that exposes anchorID as a deep link target.
type HeadingFunc func(level int, anchorID string, class string, content templ.Component) templ.Component

// IconFunc renders a decorative glyph.
type IconFunc func(id icons.ID, class string) templ.Component

// Kit bundles the collaborators and presentation used by RenderCard. Nil
// fields fall back to the package defaults.
type Kit struct {
	Image        ImageFunc
	ExternalLink ExternalLinkFunc
	InternalLink InternalLinkFunc
	Heading      HeadingFunc
	Icon         IconFunc
	Styles       *Styles
	Loc          Localizer
}

// Photo widths requested from the CDN per placement.
const (
	wideImageWidthPX    = 300
	compactImageWidthPX = 640
)

// NewKit returns the default kit resolving photos through cdn and labels
// through loc.
func NewKit(cdn imagecdn.CDN, loc Localizer) Kit {
	return Kit{
		Image: CDNImage(cdn),
		Loc:   loc,
	}
}

func (k Kit) withDefaults() Kit {
	if k.Image == nil {
		k.Image = CDNImage(imagecdn.CDN{})
	}
	if k.ExternalLink == nil {
		k.ExternalLink = ExternalLink
	}
	if k.InternalLink == nil {
		k.InternalLink = InternalLink
	}
	if k.Heading == nil {
		k.Heading = AnchoredHeading
	}
	if k.Icon == nil {
		k.Icon = icons.Glyph
	}
	if k.Styles == nil {
		styles := DefaultStyles()
		k.Styles = &styles
	}
	if k.Loc == nil {
		k.Loc = platformi18n.Printer(platformi18n.DefaultTag())
	}
	return k
}

// CDNImage returns an ImageFunc that resolves sources through cdn and fills
// its container.
func CDNImage(cdn imagecdn.CDN) ImageFunc {
	return func(src string, fit Fit, alt string, placement Placement, class string) templ.Component {
		width := wideImageWidthPX
		if placement == PlacementCompact {
			width = compactImageWidthPX
		}
		resolved := cdn.ResolvePhoto(src, width)
		return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			h := &htmlWriter{ctx: ctx, w: w}
			h.open("img",
				attr{"src", safeURL(resolved)},
				attr{"alt", alt},
				attr{"class", class},
				attr{"style", "object-fit: " + string(fit)},
				attr{"loading", "lazy"},
				attr{"decoding", "async"},
			)
			return h.err
		})
	}
}

// ExternalLink opens href in a new tab without leaking the opener or referrer.
func ExternalLink(href string, ariaLabel string, class string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{ctx: ctx, w: w}
		h.open("a",
			attr{"href", safeURL(href)},
			attr{"target", "_blank"},
			attr{"rel", "noopener noreferrer"},
			attr{"aria-label", ariaLabel},
			attr{"class", class},
		)
		h.component(content)
		h.close("a")
		return h.err
	})
}

// InternalLink links to a page on this site.
func InternalLink(href string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{ctx: ctx, w: w}
		h.open("a", attr{"href", safeURL(href)})
		h.component(content)
		h.close("a")
		return h.err
	})
}

// AnchoredHeading renders an h1-h6 with id anchorID and a trailing
// self-link so the section can be deep linked.
func AnchoredHeading(level int, anchorID string, class string, content templ.Component) templ.Component {
	if level < 1 || level > 6 {
		level = HeadingLevel
	}
	tag := fmt.Sprintf("h%d", level)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{ctx: ctx, w: w}
		h.open(tag, attr{"id", anchorID}, attr{"class", class})
		h.component(content)
		h.open("a",
			attr{"href", "#" + url.PathEscape(anchorID)},
			attr{"class", "heading-anchor"},
			attr{"aria-hidden", "true"},
		)
		h.raw("#")
		h.close("a")
		h.close(tag)
		return h.err
	})
}
