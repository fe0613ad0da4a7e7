package teamcard

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Render validates p and renders its card. A validation error is returned
// from the component's Render before anything is written.
func Render(p Profile, kit Kit) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		card, err := Build(p)
		if err != nil {
			return err
		}
		return RenderCard(card, kit).Render(ctx, w)
	})
}

// RenderCard renders a built card tree.
func RenderCard(card Card, kit Kit) templ.Component {
	kit = kit.withDefaults()
	styles := *kit.Styles
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{ctx: ctx, w: w}

		h.open("div", regionAttrs(styles.Card)...)
		h.open("div", regionAttrs(styles.Layout)...)

		for _, photo := range card.Photos {
			region := styles.PhotoRegion(photo.Placement)
			h.open("div", append(regionAttrs(region), attr{"data-placement", photo.Placement.String()})...)
			h.component(kit.Image(photo.Src, photo.Fit, photo.Alt, photo.Placement, styles.Image.Class))
			h.close("div")
		}

		h.open("div", regionAttrs(styles.TextRegion)...)
		h.component(kit.Heading(card.Heading.Level, card.Heading.AnchorID, styles.Heading.Class, textComponent(card.Heading.Text)))
		if card.Title != "" {
			h.open("div", regionAttrs(styles.Title)...)
			h.text(card.Title)
			h.close("div")
		}
		h.component(card.Biography)
		writeBadges(h, card.Badges, kit, styles)
		writeDisclosure(h, card.Disclosure, kit, styles)
		h.close("div")

		h.close("div")
		h.close("div")
		return h.err
	})
}

func writeBadges(h *htmlWriter, badges []Badge, kit Kit, styles Styles) {
	if len(badges) == 0 {
		return
	}
	h.open("div", regionAttrs(styles.LinkRow)...)
	for _, badge := range badges {
		label := kit.Loc.Sprintf(badge.LabelKey, badge.Owner)
		content := join(kit.Icon(badge.Icon, styles.BadgeIcon.Class), textComponent(badge.Text))
		h.open("div", append(regionAttrs(styles.Badge), attr{"data-badge", badge.Name})...)
		h.component(kit.ExternalLink(badge.Href, label, styles.BadgeLink.Class, content))
		h.close("div")
	}
	h.close("div")
}

func writeDisclosure(h *htmlWriter, disclosure *Disclosure, kit Kit, styles Styles) {
	if disclosure == nil || len(disclosure.Items) == 0 {
		return
	}
	h.open("details", regionAttrs(styles.Disclosure)...)
	h.open("summary")
	h.text(kit.Loc.Sprintf(disclosure.LabelKey))
	h.raw(" ")
	h.open("small")
	h.text(fmt.Sprintf("(%d)", disclosure.Count))
	h.close("small")
	h.close("summary")
	h.open("ul", regionAttrs(styles.DisclosureList)...)
	for _, item := range disclosure.Items {
		h.open("li", attr{"data-key", item.Key})
		h.component(kit.InternalLink(item.Href, textComponent(item.Text)))
		h.close("li")
	}
	h.close("ul")
	h.close("details")
}
