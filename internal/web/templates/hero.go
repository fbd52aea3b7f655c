package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/louisbranch/gitfolio/internal/content"
)

// HeroLink is one entry of the hero quick-link list.
type HeroLink struct {
	// Icon is a css icon class, for example "fas fa-envelope".
	Icon  string
	Label string
	URL   string
}

// HeroView is the assembled hero section data.
type HeroView struct {
	Name       string
	AvatarURL  string
	AvatarAlt  string
	Bio        []content.Paragraph
	Links      []HeroLink
	LoadFailed bool
	// ErrorText is shown above the hero when the profile load failed.
	ErrorText string
}

// Hero renders the introductory block: greeting, name, avatar, bio, and the
// quick links. When the load failed it renders the localized error line and
// placeholder identity with a longer reveal delay so the error stays legible.
func Hero(page PageContext, view HeroView) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		sectionClass := "hero"
		if view.LoadFailed {
			sectionClass = "hero hero-error"
		}
		if err := writeAll(w, `<section id="hero" class="`, sectionClass, "\">\n"); err != nil {
			return err
		}
		if view.LoadFailed && view.ErrorText != "" {
			if err := writeAll(w, `<p id="loading-text" class="load-error">`, esc(view.ErrorText), "</p>\n"); err != nil {
				return err
			}
		}
		if err := writeAll(w,
			`<p id="hero-greeting">`, esc(page.Copy.Greeting), "</p>\n",
			`<h1 id="user-name">`, esc(view.Name), "</h1>\n",
			`<img id="user-avatar" src="`, esc(view.AvatarURL), `" alt="`, esc(view.AvatarAlt), "\">\n",
			`<div id="user-bio">`, "\n",
		); err != nil {
			return err
		}
		if err := writeParagraphs(w, view.Bio); err != nil {
			return err
		}
		if err := writeAll(w, "</div>\n", `<div id="hero-links">`, "\n"); err != nil {
			return err
		}
		for _, link := range view.Links {
			if err := writeAll(w,
				`<a class="hero-link" href="`, esc(link.URL), `" target="_blank" rel="noopener noreferrer">`,
				`<i class="`, esc(link.Icon), `"></i> `, esc(link.Label), "</a>\n",
			); err != nil {
				return err
			}
		}
		return writeAll(w, "</div>\n</section>\n")
	})
}

// writeParagraphs renders paragraphs with single line breaks preserved as <br>.
func writeParagraphs(w io.Writer, paragraphs []content.Paragraph) error {
	for _, paragraph := range paragraphs {
		if err := writeAll(w, "<p>"); err != nil {
			return err
		}
		for i, line := range paragraph {
			if i > 0 {
				if err := writeAll(w, "<br>"); err != nil {
					return err
				}
			}
			if err := writeAll(w, esc(line)); err != nil {
				return err
			}
		}
		if err := writeAll(w, "</p>\n"); err != nil {
			return err
		}
	}
	return nil
}
