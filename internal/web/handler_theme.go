package web

import (
	"net/http"

	"github.com/louisbranch/gitfolio/internal/web/prefs"
)

// handleThemeToggle flips the theme preference and sends the visitor back to
// the page they toggled from.
func (s *Server) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	next := prefs.Toggle(prefs.ReadTheme(r))
	prefs.WriteTheme(w, next)
	http.Redirect(w, r, redirectTarget(r), http.StatusSeeOther)
}

// redirectTarget keeps post-action redirects on-site.
func redirectTarget(r *http.Request) string {
	referer := r.Header.Get("Referer")
	if referer == "" {
		return "/"
	}
	if u, err := r.URL.Parse(referer); err == nil && u.Host == r.Host {
		target := u.Path
		if u.RawQuery != "" {
			target += "?" + u.RawQuery
		}
		return target
	}
	return "/"
}
