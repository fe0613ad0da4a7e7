package teamcard

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

type attr struct {
	name  string
	value string
}

// htmlWriter keeps the first write error so markup code reads top to bottom.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// open writes a start tag. Attributes with empty values are omitted.
func (h *htmlWriter) open(tag string, attrs ...attr) {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(tag)
	for _, a := range attrs {
		if a.value == "" {
			continue
		}
		b.WriteString(" ")
		b.WriteString(a.name)
		b.WriteString(`="`)
		b.WriteString(templ.EscapeString(a.value))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	h.raw(b.String())
}

func (h *htmlWriter) close(tag string) {
	h.raw("</" + tag + ">")
}

func (h *htmlWriter) component(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

func regionAttrs(r Region) []attr {
	return []attr{{"class", r.Class}, {"style", r.Style}}
}

// textComponent renders s as escaped text.
func textComponent(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// join renders components in order.
func join(components ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range components {
			if c == nil {
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// safeURL returns href unless it uses a scheme templ refuses to emit.
func safeURL(href string) string {
	return string(templ.URL(href))
}
