// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/teamdocs/internal/services/shared/i18nhttp"
	"github.com/louisbranch/teamdocs/internal/services/shared/templates"
	"github.com/louisbranch/teamdocs/internal/services/web/platform/httpx"
	"golang.org/x/text/language"
)

// ModulePage describes one full-page response.
type ModulePage struct {
	Title       string
	Intro       string
	StatusCode  int
	Breadcrumbs []templates.BreadcrumbItem
	Fragment    templ.Component
}

// Locale is the resolved request language.
type Locale struct {
	Loc templates.Localizer
	Tag language.Tag
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WriteModulePage renders page inside the shared document shell. The page is
// rendered into memory first, so a render error leaves the response untouched
// and the caller can still write an error page.
func WriteModulePage(w http.ResponseWriter, r *http.Request, locale Locale, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	shell := templates.Page(templates.PageOptions{
		Title:       page.Title,
		Intro:       page.Intro,
		Lang:        locale.Tag.String(),
		Loc:         locale.Loc,
		Languages:   i18nhttp.BuildLanguageOptions(r, locale.Tag),
		Breadcrumbs: page.Breadcrumbs,
	})
	var buf bytes.Buffer
	if err := shell.Render(templ.WithChildren(httpx.RequestContext(r), fragment), &buf); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if r != nil && r.Method == http.MethodHead {
		return nil
	}
	_, err := buf.WriteTo(w)
	return err
}
