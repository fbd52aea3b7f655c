package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/louisbranch/gitfolio/internal/web/prefs"
)

// Layout renders the full document: head metadata, nav chrome, the page body,
// footer, and the presentation script.
func Layout(page PageContext, meta Meta, body templ.Component) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		if err := writeAll(w,
			"<!DOCTYPE html>\n",
			`<html lang="`, esc(page.Lang), `" data-theme="`, esc(string(page.Theme)), "\">\n",
			"<head>\n",
			"<meta charset=\"utf-8\">\n",
			"<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n",
			"<title>", esc(meta.Title), "</title>\n",
		); err != nil {
			return err
		}
		if err := writeMetaTags(w, meta); err != nil {
			return err
		}
		if err := writeAll(w,
			"<link rel=\"stylesheet\" href=\"/static/styles.css\">\n",
			"</head>\n",
			"<body>\n",
		); err != nil {
			return err
		}
		if err := writeNav(w, page); err != nil {
			return err
		}
		if err := writeAll(w, "<main>\n"); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		if err := writeAll(w,
			"</main>\n",
			"<footer><p id=\"footer-text\">", esc(page.Copy.FooterText), "</p></footer>\n",
			presentationScript,
			"</body>\n</html>\n",
		); err != nil {
			return err
		}
		return nil
	})
}

func writeMetaTags(w io.Writer, meta Meta) error {
	if meta.Description != "" {
		if err := writeAll(w, `<meta name="description" content="`, esc(meta.Description), "\">\n"); err != nil {
			return err
		}
	}
	if meta.Author != "" {
		if err := writeAll(w, `<meta name="author" content="`, esc(meta.Author), "\">\n"); err != nil {
			return err
		}
	}
	if meta.Title != "" {
		if err := writeAll(w,
			`<meta property="og:title" content="`, esc(meta.Title), "\">\n",
			`<meta name="twitter:title" content="`, esc(meta.Title), "\">\n",
		); err != nil {
			return err
		}
	}
	if meta.Description != "" {
		if err := writeAll(w,
			`<meta property="og:description" content="`, esc(meta.Description), "\">\n",
			`<meta name="twitter:description" content="`, esc(meta.Description), "\">\n",
		); err != nil {
			return err
		}
	}
	if meta.ImageURL != "" {
		if err := writeAll(w,
			`<meta property="og:image" content="`, esc(meta.ImageURL), "\">\n",
			`<meta name="twitter:image" content="`, esc(meta.ImageURL), "\">\n",
		); err != nil {
			return err
		}
	}
	if meta.PageURL != "" {
		if err := writeAll(w, `<meta property="og:url" content="`, esc(meta.PageURL), "\">\n"); err != nil {
			return err
		}
	}
	return nil
}

func writeNav(w io.Writer, page PageContext) error {
	themeIcon, themeTooltip := "🌙", page.Copy.ToDarkTheme
	if page.Theme == prefs.ThemeDark {
		themeIcon, themeTooltip = "☀️", page.Copy.ToLightTheme
	}

	return writeAll(w,
		"<nav>\n",
		`<span id="nav-title">`, esc(page.Copy.NavTitle), "</span>\n",
		"<div class=\"nav-controls\">\n",
		langSwitchLink(page, "es", "ES"),
		langSwitchLink(page, "en", "EN"),
		`<form method="post" action="/theme">`,
		`<button id="theme-toggle" type="submit" title="`, esc(themeTooltip), `">`, themeIcon, "</button>",
		"</form>\n",
		"</div>\n",
		"</nav>\n",
	)
}

func langSwitchLink(page PageContext, lang, label string) string {
	class := "lang-switch"
	if page.Lang == lang {
		class += " active"
	}
	return fmt.Sprintf("<a id=%q class=%q href=\"%s?lang=%s\" hreflang=%q>%s</a>\n",
		"lang-"+lang, class, esc(page.CurrentPath), lang, lang, label)
}

// presentationScript drives smooth scrolling for in-page anchors and the
// one-shot scroll reveal. Purely presentational; the page works without it.
const presentationScript = `<script>
document.addEventListener("click", function (e) {
  if (e.target.matches('a[href^="#"]')) {
    e.preventDefault();
    var target = document.querySelector(e.target.getAttribute("href"));
    if (target) {
      target.scrollIntoView({ behavior: "smooth", block: "start" });
    }
  }
});
window.addEventListener("load", function () {
  var observer = new IntersectionObserver(function (entries) {
    entries.forEach(function (entry) {
      if (entry.isIntersecting) {
        entry.target.classList.add("fade-in");
        observer.unobserve(entry.target);
      }
    });
  }, { threshold: 0.1, rootMargin: "0px 0px -50px 0px" });
  document.querySelectorAll("section, .project-card").forEach(function (el) {
    observer.observe(el);
  });
});
</script>
`
