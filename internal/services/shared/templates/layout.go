// Package templates provides the page chrome shared by HTML surfaces.
package templates

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/teamdocs/internal/platform/branding"
	"github.com/louisbranch/teamdocs/internal/services/shared/i18nhttp"
)

// PageOptions configures the document shell rendered by Page.
type PageOptions struct {
	Title       string
	Lang        string
	Loc         Localizer
	Languages   []i18nhttp.LanguageOption
	Breadcrumbs []BreadcrumbItem
	// Intro is an optional lead paragraph under the page heading.
	Intro string
}

// ComposePageTitle appends the product name to title unless it is already
// present. A hyphen-separated brand suffix is normalized to the pipe form.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return branding.AppName
	}
	pipeSuffix := branding.TitleSeparator + branding.AppName
	if strings.HasSuffix(title, pipeSuffix) {
		return title
	}
	title = strings.TrimSuffix(title, " - "+branding.AppName)
	return title + pipeSuffix
}

func pageHeadingFromTitle(title string, appName string) string {
	title = strings.TrimSpace(title)
	title = strings.TrimSuffix(title, branding.TitleSeparator+appName)
	title = strings.TrimSuffix(title, " - "+appName)
	return strings.TrimSpace(title)
}

// Page renders a full HTML document around the children in ctx.
func Page(opts PageOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := strings.TrimSpace(opts.Lang)
		if lang == "" {
			lang = "en-US"
		}
		title := ComposePageTitle(opts.Title)

		var b strings.Builder
		b.WriteString(`<!doctype html><html lang="` + templ.EscapeString(lang) + `"><head>`)
		b.WriteString(`<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.WriteString(`<title>` + templ.EscapeString(title) + `</title></head><body>`)
		b.WriteString(`<header class="site-header"><a class="site-brand" href="/team">` + templ.EscapeString(branding.AppName) + `</a>`)
		b.WriteString(`<nav class="site-nav"><a href="/team">` + templ.EscapeString(T(opts.Loc, "core.nav.team")) + `</a></nav>`)
		writeLanguageSwitcher(&b, opts.Languages, opts.Loc)
		b.WriteString(`</header>`)
		writeBreadcrumbs(&b, opts.Breadcrumbs)
		b.WriteString(`<main class="max-w-4xl mx-auto px-5"><h1>` + templ.EscapeString(pageHeadingFromTitle(title, branding.AppName)) + `</h1>`)
		if intro := strings.TrimSpace(opts.Intro); intro != "" {
			b.WriteString(`<p class="page-intro">` + templ.EscapeString(intro) + `</p>`)
		}
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if children := templ.GetChildren(ctx); children != nil {
			if err := children.Render(templ.ClearChildren(ctx), w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

func writeLanguageSwitcher(b *strings.Builder, options []i18nhttp.LanguageOption, loc Localizer) {
	if len(options) == 0 {
		return
	}
	b.WriteString(`<nav class="language-switcher" aria-label="` + templ.EscapeString(T(loc, "core.nav.language")) + `"><ul>`)
	for _, option := range options {
		b.WriteString(`<li><a href="` + templ.EscapeString(string(templ.URL(option.URL))) + `" hreflang="` + templ.EscapeString(option.Tag) + `"`)
		if option.Active {
			b.WriteString(` aria-current="true"`)
		}
		b.WriteString(`>` + templ.EscapeString(option.Label) + `</a></li>`)
	}
	b.WriteString(`</ul></nav>`)
}

func writeBreadcrumbs(b *strings.Builder, items []BreadcrumbItem) {
	if len(items) == 0 {
		return
	}
	b.WriteString(`<nav class="breadcrumbs"><ol>`)
	for _, item := range items {
		if item.URL == "" {
			b.WriteString(`<li aria-current="page">` + templ.EscapeString(item.Label) + `</li>`)
			continue
		}
		b.WriteString(`<li><a href="` + templ.EscapeString(string(templ.URL(item.URL))) + `">` + templ.EscapeString(item.Label) + `</a></li>`)
	}
	b.WriteString(`</ol></nav>`)
}

// ErrorMessageKey returns the catalog key describing status to readers.
func ErrorMessageKey(status int) string {
	if status == http.StatusNotFound {
		return "core.error.not_found"
	}
	return "core.error.internal"
}

// ErrorPageTitle returns the localized title for an error page.
func ErrorPageTitle(loc Localizer) string {
	return T(loc, "core.error.title")
}

// ErrorState renders the body of an error page.
func ErrorState(status int, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="error-state" data-status="`+strconv.Itoa(status)+`"><p>`+
			templ.EscapeString(T(loc, ErrorMessageKey(status)))+`</p></section>`)
		return err
	})
}
