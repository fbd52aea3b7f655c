package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Sections renders components in sequence as the page body.
func Sections(components ...templ.Component) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
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
