package web

import (
	"strings"

	"github.com/louisbranch/gitfolio/internal/content"
	"github.com/louisbranch/gitfolio/internal/github"
	webi18n "github.com/louisbranch/gitfolio/internal/web/i18n"
	"github.com/louisbranch/gitfolio/internal/web/templates"
)

// contactEmail returns the address for contact surfaces: the identity file
// override wins over the profile's public email.
func contactEmail(profile github.Profile, identity content.OwnerIdentity) string {
	if identity.Email != "" {
		return identity.Email
	}
	if profile.HasEmail() {
		return *profile.Email
	}
	return ""
}

// websiteURL normalizes the profile blog field, prefixing https:// when the
// stored value lacks a scheme.
func websiteURL(blog string) string {
	if strings.HasPrefix(blog, "http://") || strings.HasPrefix(blog, "https://") {
		return blog
	}
	return "https://" + blog
}

// heroLinks assembles the quick-link list in fixed order: email, website,
// twitter, then the always-present GitHub profile link.
func heroLinks(profile github.Profile, identity content.OwnerIdentity, copy webi18n.PortfolioCopy) []templates.HeroLink {
	var links []templates.HeroLink
	if email := contactEmail(profile, identity); email != "" {
		links = append(links, templates.HeroLink{Icon: "fas fa-envelope", Label: copy.LinkEmail, URL: "mailto:" + email})
	}
	if profile.HasBlog() {
		links = append(links, templates.HeroLink{Icon: "fas fa-globe", Label: copy.LinkWebsite, URL: websiteURL(*profile.Blog)})
	}
	if profile.HasTwitter() {
		links = append(links, templates.HeroLink{Icon: "fab fa-twitter", Label: copy.LinkTwitter, URL: "https://twitter.com/" + *profile.TwitterUsername})
	}
	links = append(links, templates.HeroLink{Icon: "fab fa-github", Label: "GitHub", URL: profile.HTMLURL})
	return links
}

// bioParagraphs prefers the profile bio, preserving its line breaks inside a
// single paragraph; otherwise the local about text stands in.
func bioParagraphs(profile github.Profile, about []content.Paragraph) []content.Paragraph {
	if !profile.HasBio() {
		return about
	}
	var lines content.Paragraph
	for _, line := range strings.Split(*profile.Bio, "\n") {
		lines = append(lines, strings.TrimSpace(line))
	}
	return []content.Paragraph{lines}
}

func buildHeroView(profile github.Profile, identity content.OwnerIdentity, copy webi18n.PortfolioCopy, about []content.Paragraph) templates.HeroView {
	name := profile.DisplayName()
	return templates.HeroView{
		Name:      name,
		AvatarURL: profile.AvatarURL,
		AvatarAlt: name + " avatar",
		Bio:       bioParagraphs(profile, about),
		Links:     heroLinks(profile, identity, copy),
	}
}

func buildProjectViews(projects []github.Repository) []templates.ProjectView {
	views := make([]templates.ProjectView, 0, len(projects))
	for _, project := range projects {
		view := templates.ProjectView{
			Name:  project.Name,
			Stars: project.StargazersCount,
			URL:   project.HTMLURL,
		}
		if project.HasDescription() {
			view.Description = *project.Description
		}
		views = append(views, view)
	}
	return views
}

func (s *Server) buildContactView(profile github.Profile, identity content.OwnerIdentity, acknowledged bool) templates.ContactView {
	email := contactEmail(profile, identity)
	showForm := true
	if s.cfg.HideFormWhenEmail && email != "" {
		showForm = false
	}
	return templates.ContactView{
		ShowForm:     showForm,
		Email:        email,
		Acknowledged: acknowledged,
	}
}

func buildMeta(profile github.Profile, copy webi18n.PortfolioCopy, pageURL string) templates.Meta {
	meta := templates.Meta{
		Title:    profile.DisplayName() + " - " + copy.PageTitle,
		ImageURL: profile.AvatarURL,
		PageURL:  pageURL,
		Author:   profile.DisplayName(),
	}
	if profile.HasBio() {
		meta.Description = *profile.Bio
	}
	return meta
}
