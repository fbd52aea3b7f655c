package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ProjectView is one rendered project card.
type ProjectView struct {
	Name        string
	Stars       int
	Description string
	URL         string
}

// Projects renders the project grid, or a centered empty-state line when the
// owner has no public non-fork repositories. Cards get a staggered entry
// delay proportional to their position.
func Projects(page PageContext, projects []ProjectView) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		if err := writeAll(w,
			`<section id="projects">`, "\n",
			`<h2 id="projects-title">`, esc(page.Copy.ProjectsTitle), "</h2>\n",
			`<div id="projects-grid">`, "\n",
		); err != nil {
			return err
		}
		if len(projects) == 0 {
			if err := writeAll(w, `<p class="no-projects">`, esc(page.Copy.NoProjects), "</p>\n"); err != nil {
				return err
			}
		}
		for index, project := range projects {
			description := project.Description
			if description == "" {
				description = page.Copy.NoDescription
			}
			if err := writeAll(w,
				fmt.Sprintf(`<div class="project-card" style="animation-delay: %.1fs">`, float64(index)*0.1), "\n",
				"<div class=\"project-header\">\n",
				`<h3 class="project-title">`, esc(project.Name), "</h3>\n",
				`<div class="project-stars">⭐ `, fmt.Sprintf("%d", project.Stars), " ", esc(page.Copy.Stars), "</div>\n",
				"</div>\n",
				`<p class="project-description">`, esc(description), "</p>\n",
				`<a class="project-link" href="`, esc(project.URL), `" target="_blank" rel="noopener noreferrer">`,
				esc(page.Copy.ViewProject), " →</a>\n",
				"</div>\n",
			); err != nil {
				return err
			}
		}
		return writeAll(w, "</div>\n</section>\n")
	})
}
