// Package content reads the site-local text resources that personalize the
// portfolio: the owner identity file and the per-language about text.
//
// Every resource is optional. A missing or unreadable file falls back to
// derived or localized defaults instead of failing the page.
package content

import (
	"fmt"
	"io/fs"
	"net"
	"strings"

	"golang.org/x/text/language"

	platformi18n "github.com/louisbranch/gitfolio/internal/platform/i18n"
)

const (
	identityResource     = "info"
	aboutResourceEnglish = "aboutMe"
	aboutResourceSpanish = "sobreMi"
)

// OwnerIdentity is the resolved username/email pair used to query the GitHub
// API and populate the contact link. Email may be empty.
type OwnerIdentity struct {
	Username string
	Email    string
}

// Paragraph is one about-text paragraph, kept as individual lines so the
// renderer can preserve single line breaks inside it.
type Paragraph []string

// Store reads site resources from a filesystem root.
type Store struct {
	fsys fs.FS
}

// NewStore wraps a filesystem holding the site resources.
func NewStore(fsys fs.FS) *Store {
	return &Store{fsys: fsys}
}

// OwnerIdentity parses the identity resource: first non-empty line is the
// username, second is an optional contact email. The bool reports whether a
// usable identity was found; callers fall back to hostname derivation.
func (s *Store) OwnerIdentity() (OwnerIdentity, bool) {
	if s == nil || s.fsys == nil {
		return OwnerIdentity{}, false
	}
	data, err := fs.ReadFile(s.fsys, identityResource)
	if err != nil {
		return OwnerIdentity{}, false
	}

	var fields []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields = append(fields, line)
		if len(fields) == 2 {
			break
		}
	}
	if len(fields) == 0 {
		return OwnerIdentity{}, false
	}

	identity := OwnerIdentity{Username: fields[0]}
	if len(fields) > 1 {
		identity.Email = fields[1]
	}
	return identity, true
}

// AboutParagraphs loads the about text for the given language, split on
// blank-line boundaries into paragraphs. The bool reports whether the
// resource was readable; callers fall back to the localized placeholder.
func (s *Store) AboutParagraphs(tag language.Tag) ([]Paragraph, bool) {
	if s == nil || s.fsys == nil {
		return nil, false
	}
	name := aboutResourceEnglish
	if tag == platformi18n.Spanish {
		name = aboutResourceSpanish
	}
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, false
	}
	paragraphs := SplitParagraphs(string(data))
	if len(paragraphs) == 0 {
		return nil, false
	}
	return paragraphs, true
}

// SplitParagraphs splits free text on blank-line boundaries. Single line
// breaks stay inside the paragraph as separate lines.
func SplitParagraphs(text string) []Paragraph {
	text = strings.ReplaceAll(strings.TrimSpace(text), "\r\n", "\n")
	if text == "" {
		return nil
	}
	var paragraphs []Paragraph
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		var lines Paragraph
		for _, line := range strings.Split(block, "\n") {
			lines = append(lines, strings.TrimSpace(line))
		}
		paragraphs = append(paragraphs, lines)
	}
	return paragraphs
}

// DeriveUsername resolves the portfolio owner from the serving host when no
// identity resource exists: a pages-domain subdomain wins, loopback hosts map
// to the fixed test account, and otherwise the first path segment is used.
func DeriveUsername(host, path, pagesDomain, loopbackFallback string) (string, error) {
	hostname := host
	if h, _, err := net.SplitHostPort(host); err == nil {
		hostname = h
	}
	hostname = strings.TrimSpace(strings.ToLower(hostname))

	if pagesDomain != "" && strings.HasSuffix(hostname, "."+pagesDomain) {
		if name := strings.TrimSuffix(hostname, "."+pagesDomain); name != "" && !strings.Contains(name, ".") {
			return name, nil
		}
	}

	if isLoopbackHost(hostname) {
		return loopbackFallback, nil
	}

	for _, segment := range strings.Split(path, "/") {
		if segment = strings.TrimSpace(segment); segment != "" {
			return segment, nil
		}
	}

	return "", fmt.Errorf("content: cannot derive username from host %q", host)
}

func isLoopbackHost(hostname string) bool {
	if hostname == "localhost" {
		return true
	}
	ip := net.ParseIP(hostname)
	return ip != nil && ip.IsLoopback()
}
