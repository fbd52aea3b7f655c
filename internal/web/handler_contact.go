package web

import "net/http"

// handleContactSubmit accepts the contact form and redirects back with the
// acknowledgement flag set. Nothing is stored or sent; the form is a
// deliberate placeholder.
func (s *Server) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, "/?"+sentParam+"=1", http.StatusSeeOther)
}
