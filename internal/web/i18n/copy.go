// Package i18n resolves the request language and provides localized page copy.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	_ "github.com/louisbranch/gitfolio/internal/platform/i18n/catalog"
)

// PortfolioCopy holds every translatable label on the portfolio page.
type PortfolioCopy struct {
	PageTitle     string
	NavTitle      string
	Greeting      string
	AboutTitle    string
	ProjectsTitle string
	ContactTitle  string
	Loading       string
	FormName      string
	FormEmail     string
	FormMessage   string
	FormSubmit    string
	FooterText    string
	LinkEmail     string
	LinkWebsite   string
	LinkTwitter   string
	ViewProject   string
	Stars         string
	NoDescription string
	NoProjects    string
	NoEmail       string
	ErrorLoading  string
	ContactAck    string
	AboutFallback string
	ToDarkTheme   string
	ToLightTheme  string
}

// Copy returns localized portfolio copy for the provided language tag.
func Copy(tag language.Tag) PortfolioCopy {
	loc := message.NewPrinter(tag)

	return PortfolioCopy{
		PageTitle:     localizeWithFallback(loc, "page.title", "Portfolio"),
		NavTitle:      localizeWithFallback(loc, "nav.title", "Portfolio"),
		Greeting:      localizeWithFallback(loc, "hero.greeting", "Hello!"),
		AboutTitle:    localizeWithFallback(loc, "section.about", "About Me"),
		ProjectsTitle: localizeWithFallback(loc, "section.projects", "Projects"),
		ContactTitle:  localizeWithFallback(loc, "section.contact", "Contact"),
		Loading:       localizeWithFallback(loc, "loading.text", "Loading..."),
		FormName:      localizeWithFallback(loc, "form.name", "Name"),
		FormEmail:     localizeWithFallback(loc, "form.email", "Email"),
		FormMessage:   localizeWithFallback(loc, "form.message", "Message"),
		FormSubmit:    localizeWithFallback(loc, "form.submit", "Send Message"),
		FooterText:    localizeWithFallback(loc, "footer.text", "© 2025 Portfolio. Built with ❤️ using GitHub API."),
		LinkEmail:     localizeWithFallback(loc, "link.email", "Email"),
		LinkWebsite:   localizeWithFallback(loc, "link.website", "Website"),
		LinkTwitter:   localizeWithFallback(loc, "link.twitter", "Twitter"),
		ViewProject:   localizeWithFallback(loc, "link.view_project", "View project"),
		Stars:         localizeWithFallback(loc, "project.stars", "stars"),
		NoDescription: localizeWithFallback(loc, "project.no_description", "No description available."),
		NoProjects:    localizeWithFallback(loc, "empty.no_projects", "No public projects found."),
		NoEmail:       localizeWithFallback(loc, "empty.no_email", "No public email available."),
		ErrorLoading:  localizeWithFallback(loc, "error.loading", "Error loading GitHub data."),
		ContactAck:    localizeWithFallback(loc, "contact.ack", "Contact me"),
		AboutFallback: localizeWithFallback(loc, "about.fallback", "Your custom text in English here."),
		ToDarkTheme:   localizeWithFallback(loc, "theme.switch_to_dark", "Switch to dark mode"),
		ToLightTheme:  localizeWithFallback(loc, "theme.switch_to_light", "Switch to light mode"),
	}
}

func localizeWithFallback(loc *message.Printer, key string, fallback string) string {
	if loc != nil {
		value := strings.TrimSpace(loc.Sprintf(key))
		if value != "" && value != key {
			return value
		}
	}
	return fallback
}
