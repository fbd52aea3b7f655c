// Package templates renders the portfolio page as templ components.
//
// Components are pure data-to-HTML projections: handlers assemble view
// structs and every component can be rendered into a buffer for tests.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	webi18n "github.com/louisbranch/gitfolio/internal/web/i18n"
	"github.com/louisbranch/gitfolio/internal/web/prefs"
)

// PageContext provides shared layout context for the portfolio page.
type PageContext struct {
	Lang        string
	Theme       prefs.Theme
	Copy        webi18n.PortfolioCopy
	CurrentPath string
}

// Meta holds the document metadata derived from the loaded profile. Empty
// fields skip their tags.
type Meta struct {
	Title       string
	Description string
	ImageURL    string
	PageURL     string
	Author      string
}

func component(render func(ctx context.Context, w io.Writer) error) templ.Component {
	return templ.ComponentFunc(render)
}

func writeAll(w io.Writer, chunks ...string) error {
	for _, chunk := range chunks {
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
	}
	return nil
}

// esc escapes text for element content and double-quoted attributes.
func esc(value string) string {
	return templ.EscapeString(value)
}
