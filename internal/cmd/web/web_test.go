package web

import (
	"flag"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.GitHubBaseURL != "https://api.github.com" {
		t.Fatalf("GitHubBaseURL = %q, want %q", cfg.GitHubBaseURL, "https://api.github.com")
	}
	if cfg.GitHubTimeout != 30*time.Second {
		t.Fatalf("GitHubTimeout = %v, want %v", cfg.GitHubTimeout, 30*time.Second)
	}
	if cfg.PagesDomain != "github.io" {
		t.Fatalf("PagesDomain = %q, want %q", cfg.PagesDomain, "github.io")
	}
	if cfg.FallbackUsername != "octocat" {
		t.Fatalf("FallbackUsername = %q, want %q", cfg.FallbackUsername, "octocat")
	}
	if cfg.HideFormWhenEmail {
		t.Fatal("HideFormWhenEmail = true, want false")
	}
}

func TestParseConfigReadsEnv(t *testing.T) {
	t.Setenv("GITFOLIO_HTTP_ADDR", "127.0.0.1:18080")
	t.Setenv("GITFOLIO_USERNAME", "octocat")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:18080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:18080")
	}
	if cfg.Username != "octocat" {
		t.Fatalf("Username = %q, want %q", cfg.Username, "octocat")
	}
}

func TestParseConfigOverrideHTTPAddr(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:18086"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:18086" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:18086")
	}
}

func TestParseConfigOverrideHideFormWhenEmail(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-hide-form-when-email"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if !cfg.HideFormWhenEmail {
		t.Fatalf("HideFormWhenEmail = %t, want true", cfg.HideFormWhenEmail)
	}
}

func TestParseConfigOverrideSiteDir(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-site-dir", "testdata/site"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.SiteDir != "testdata/site" {
		t.Fatalf("SiteDir = %q, want %q", cfg.SiteDir, "testdata/site")
	}
}
