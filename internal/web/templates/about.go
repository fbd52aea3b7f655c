package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/louisbranch/gitfolio/internal/content"
)

// About renders the about section from the site-local narrative text.
func About(page PageContext, paragraphs []content.Paragraph) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		if err := writeAll(w,
			`<section id="about">`, "\n",
			`<h2 id="about-title">`, esc(page.Copy.AboutTitle), "</h2>\n",
			`<div id="about-text">`, "\n",
		); err != nil {
			return err
		}
		if err := writeParagraphs(w, paragraphs); err != nil {
			return err
		}
		return writeAll(w, "</div>\n</section>\n")
	})
}
