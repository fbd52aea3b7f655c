package web

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	"golang.org/x/text/language"

	"github.com/louisbranch/gitfolio/internal/content"
	webi18n "github.com/louisbranch/gitfolio/internal/web/i18n"
	"github.com/louisbranch/gitfolio/internal/web/prefs"
	"github.com/louisbranch/gitfolio/internal/web/templates"
)

// sentParam marks the contact acknowledgement after the redirect.
const sentParam = "sent"

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	theme := prefs.ReadTheme(r)
	tag, persist := webi18n.ResolveTag(r)
	if persist {
		webi18n.SetLanguageCookie(w, tag)
	}

	page := templates.PageContext{
		Lang:        tag.String(),
		Theme:       theme,
		Copy:        webi18n.Copy(tag),
		CurrentPath: r.URL.Path,
	}
	about := s.aboutParagraphs(tag, page.Copy)
	acknowledged := r.URL.Query().Get(sentParam) == "1"

	identity, err := s.resolveOwner(r)
	if err != nil {
		s.logger.Printf("resolve owner: %v", err)
		s.renderLoadError(w, r, page, about, acknowledged)
		return
	}

	result, err := s.loader.Load(r.Context(), identity.Username)
	if err != nil {
		s.logger.Printf("portfolio load for %q: %v", identity.Username, err)
		s.renderLoadError(w, r, page, about, acknowledged)
		return
	}

	hero := buildHeroView(result.Profile, identity, page.Copy, about)
	projects := buildProjectViews(result.Projects)
	contact := s.buildContactView(result.Profile, identity, acknowledged)
	meta := buildMeta(result.Profile, page.Copy, requestURL(r))

	body := templates.Sections(
		templates.Hero(page, hero),
		templates.About(page, about),
		templates.Projects(page, projects),
		templates.Contact(page, contact),
	)
	s.renderPage(w, r, page, meta, body)
}

// renderLoadError paints the degraded page: localized error line, placeholder
// identity, and the local-only sections. No partial profile data is shown.
func (s *Server) renderLoadError(w http.ResponseWriter, r *http.Request, page templates.PageContext, about []content.Paragraph, acknowledged bool) {
	hero := templates.HeroView{
		Name:       "Developer",
		AvatarURL:  "https://github.com/github.png",
		AvatarAlt:  "Default avatar",
		Bio:        []content.Paragraph{{page.Copy.AboutFallback}},
		LoadFailed: true,
		ErrorText:  page.Copy.ErrorLoading,
	}
	contact := templates.ContactView{ShowForm: true, Acknowledged: acknowledged}
	meta := templates.Meta{Title: page.Copy.PageTitle}

	body := templates.Sections(
		templates.Hero(page, hero),
		templates.About(page, about),
		templates.Contact(page, contact),
	)
	s.renderPage(w, r, page, meta, body)
}

// renderPage renders the layout into a buffer before writing so a template
// failure never leaves a half-written response.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, page templates.PageContext, meta templates.Meta, body templ.Component) {
	var rendered bytes.Buffer
	if err := templates.Layout(page, meta, body).Render(r.Context(), &rendered); err != nil {
		s.logger.Printf("render page: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(rendered.Bytes())
}

// aboutParagraphs loads the localized about text, falling back to the
// localized placeholder sentence when the resource is missing.
func (s *Server) aboutParagraphs(tag language.Tag, copy webi18n.PortfolioCopy) []content.Paragraph {
	if paragraphs, ok := s.store.AboutParagraphs(tag); ok {
		return paragraphs
	}
	return []content.Paragraph{{copy.AboutFallback}}
}

// resolveOwner resolves the portfolio owner: the identity resource wins, then
// the configured username, then hostname derivation from the request.
func (s *Server) resolveOwner(r *http.Request) (content.OwnerIdentity, error) {
	if identity, ok := s.store.OwnerIdentity(); ok {
		return identity, nil
	}
	if s.cfg.Username != "" {
		return content.OwnerIdentity{Username: s.cfg.Username}, nil
	}
	username, err := content.DeriveUsername(r.Host, r.URL.Path, s.cfg.PagesDomain, s.cfg.FallbackUsername)
	if err != nil {
		return content.OwnerIdentity{}, err
	}
	return content.OwnerIdentity{Username: username}, nil
}

// requestURL reconstructs the canonical page URL for sharing meta tags.
func requestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.Path
}
