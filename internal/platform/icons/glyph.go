package icons

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

const glyphViewBox = "0 0 24 24"

// Path data is drawn on a 24x24 grid and filled with currentColor.
var glyphPaths = map[ID]string{
	Twitter: `<path d="M23.643 4.937c-.835.37-1.732.62-2.675.733a4.67 4.67 0 0 0 2.048-2.578 9.3 9.3 0 0 1-2.958 1.13 4.66 4.66 0 0 0-7.938 4.25 13.229 13.229 0 0 1-9.602-4.868c-.4.69-.63 1.49-.63 2.342A4.66 4.66 0 0 0 3.96 9.824a4.647 4.647 0 0 1-2.11-.583v.06a4.66 4.66 0 0 0 3.737 4.568 4.692 4.692 0 0 1-2.104.08 4.661 4.661 0 0 0 4.352 3.234 9.348 9.348 0 0 1-5.786 1.995 9.5 9.5 0 0 1-1.112-.065 13.175 13.175 0 0 0 7.14 2.093c8.57 0 13.255-7.098 13.255-13.254 0-.2-.005-.402-.014-.602a9.47 9.47 0 0 0 2.323-2.41l.002-.003Z"/>`,
	Threads: `<path d="M16.02 11.13a7.6 7.6 0 0 0-.29-.13c-.17-3.14-1.89-4.94-4.77-4.96h-.04c-1.72 0-3.16.74-4.03 2.07l1.58 1.09c.66-1 1.69-1.21 2.45-1.21h.03c.95 0 1.66.28 2.12.82.34.39.56.93.67 1.61a12.1 12.1 0 0 0-2.71-.13c-2.73.16-4.48 1.75-4.36 3.95.06 1.12.62 2.08 1.57 2.71.8.53 1.84.79 2.91.73 1.42-.08 2.53-.62 3.3-1.61.59-.75.96-1.72 1.12-2.95.68.41 1.18.94 1.46 1.59.47 1.1.5 2.91-.98 4.38-1.29 1.29-2.85 1.85-5.2 1.87-2.61-.02-4.59-.86-5.87-2.49-1.2-1.53-1.82-3.74-1.84-6.56.02-2.82.64-5.03 1.84-6.56 1.28-1.63 3.26-2.47 5.87-2.49 2.63.02 4.64.86 5.97 2.5.65.8 1.14 1.81 1.47 2.99l1.86-.5c-.4-1.46-1.02-2.73-1.86-3.77C17.58 1.33 15.1.24 11.96.22h-.01C8.82.24 6.4 1.33 4.76 3.43 3.3 5.29 2.55 7.88 2.52 11.12v.02c.03 3.24.78 5.83 2.24 7.69 1.64 2.1 4.07 3.19 7.19 3.21h.01c2.78-.02 4.74-.75 6.36-2.37 2.12-2.11 2.05-4.76 1.35-6.4-.5-1.17-1.46-2.12-2.77-2.75l.12.01Zm-4.83 4.54c-1.16.07-2.37-.46-2.43-1.58-.04-.83.59-1.76 2.5-1.87.22-.01.43-.02.64-.02.69 0 1.34.07 1.93.2-.22 2.75-1.51 3.21-2.64 3.27Z"/>`,
	GitHub:  `<path d="M12 .297c-6.63 0-12 5.373-12 12 0 5.303 3.438 9.8 8.205 11.385.6.113.82-.258.82-.577 0-.285-.01-1.04-.015-2.04-3.338.724-4.042-1.61-4.042-1.61-.546-1.385-1.335-1.755-1.335-1.755-1.087-.744.084-.729.084-.729 1.205.084 1.838 1.236 1.838 1.236 1.07 1.835 2.809 1.305 3.495.998.108-.776.417-1.305.76-1.605-2.665-.3-5.466-1.332-5.466-5.93 0-1.31.465-2.38 1.235-3.22-.135-.303-.54-1.523.105-3.176 0 0 1.005-.322 3.3 1.23.96-.267 1.98-.399 3-.405 1.02.006 2.04.138 3 .405 2.28-1.552 3.285-1.23 3.285-1.23.645 1.653.24 2.873.12 3.176.765.84 1.23 1.91 1.23 3.22 0 4.61-2.805 5.625-5.475 5.92.42.36.81 1.096.81 2.22 0 1.606-.015 2.896-.015 3.286 0 .315.21.69.825.57C20.565 22.092 24 17.592 24 12.297c0-6.627-5.373-12-12-12"/>`,
	Link:    `<path d="M10.59 13.41a1 1 0 0 1 0-1.41l3.3-3.3a1 1 0 1 1 1.41 1.41l-3.3 3.3a1 1 0 0 1-1.41 0Z"/><path d="M8.46 19.54a4.5 4.5 0 0 1-6.36-6.36l2.83-2.83a1 1 0 1 1 1.41 1.41l-2.83 2.83a2.5 2.5 0 0 0 3.54 3.54l2.83-2.83a1 1 0 1 1 1.41 1.41l-2.83 2.83Zm7.07-7.07a1 1 0 0 1 0-1.41l2.83-2.83a2.5 2.5 0 0 0-3.54-3.54l-2.83 2.83a1 1 0 1 1-1.41-1.41l2.83-2.83a4.5 4.5 0 0 1 6.36 6.36l-2.83 2.83a1 1 0 0 1-1.41 0Z"/>`,
}

// SVG returns the inline SVG markup for id with an optional class attribute.
func SVG(id ID, class string) (string, bool) {
	paths, ok := glyphPaths[id]
	if !ok {
		return "", false
	}
	classAttr := ""
	if class != "" {
		classAttr = fmt.Sprintf(` class="%s"`, templ.EscapeString(class))
	}
	return fmt.Sprintf(
		`<svg%s width="1.33em" height="1.33em" viewBox="%s" fill="currentColor" aria-hidden="true" focusable="false" data-icon="%s">%s</svg>`,
		classAttr,
		glyphViewBox,
		id.String(),
		paths,
	), true
}

// Glyph renders id as an inline SVG. Unknown identifiers render nothing.
func Glyph(id ID, class string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		markup, ok := SVG(id, class)
		if !ok {
			return nil
		}
		_, err := io.WriteString(w, markup)
		return err
	})
}
