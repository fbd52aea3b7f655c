package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ContactView controls the contact section surface.
type ContactView struct {
	// ShowForm renders the message form; otherwise a mailto notice (or the
	// localized no-email notice) takes its place.
	ShowForm bool
	// Email is the contact address shown when the form is suppressed.
	Email string
	// Acknowledged renders the localized acknowledgement after a submit.
	Acknowledged bool
}

// Contact renders the contact section. The form never sends a message
// anywhere; submitting it only produces the localized acknowledgement.
func Contact(page PageContext, view ContactView) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		if err := writeAll(w,
			`<section id="contact">`, "\n",
			`<h2 id="contact-title">`, esc(page.Copy.ContactTitle), "</h2>\n",
			`<div id="contact-info">`, "\n",
		); err != nil {
			return err
		}
		if view.Acknowledged {
			if err := writeAll(w, `<p class="contact-ack">`, esc(page.Copy.ContactAck), "!</p>\n"); err != nil {
				return err
			}
		}
		if view.ShowForm {
			if err := writeContactForm(w, page); err != nil {
				return err
			}
		} else if view.Email != "" {
			if err := writeAll(w,
				`<p class="contact-email"><a href="mailto:`, esc(view.Email), `">`, esc(view.Email), "</a></p>\n",
			); err != nil {
				return err
			}
		} else {
			if err := writeAll(w, `<p class="no-email">`, esc(page.Copy.NoEmail), "</p>\n"); err != nil {
				return err
			}
		}
		return writeAll(w, "</div>\n</section>\n")
	})
}

func writeContactForm(w io.Writer, page PageContext) error {
	return writeAll(w,
		`<form id="contact-form" method="post" action="/contact">`, "\n",
		`<label id="form-name-label" for="form-name">`, esc(page.Copy.FormName), "</label>\n",
		`<input id="form-name" name="name" type="text" required>`, "\n",
		`<label id="form-email-label" for="form-email">`, esc(page.Copy.FormEmail), "</label>\n",
		`<input id="form-email" name="email" type="email" required>`, "\n",
		`<label id="form-message-label" for="form-message">`, esc(page.Copy.FormMessage), "</label>\n",
		`<textarea id="form-message" name="message" required></textarea>`, "\n",
		`<button id="form-submit" type="submit">`, esc(page.Copy.FormSubmit), "</button>\n",
		"</form>\n",
	)
}
