// Package web wires configuration for the portfolio web service.
package web

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	platformcmd "github.com/louisbranch/gitfolio/internal/platform/cmd"
	"github.com/louisbranch/gitfolio/internal/github"
	"github.com/louisbranch/gitfolio/internal/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr          string        `env:"GITFOLIO_HTTP_ADDR" envDefault:"localhost:8080"`
	SiteDir           string        `env:"GITFOLIO_SITE_DIR" envDefault:"site"`
	GitHubBaseURL     string        `env:"GITFOLIO_GITHUB_BASE_URL" envDefault:"https://api.github.com"`
	GitHubTimeout     time.Duration `env:"GITFOLIO_GITHUB_TIMEOUT" envDefault:"30s"`
	Username          string        `env:"GITFOLIO_USERNAME"`
	PagesDomain       string        `env:"GITFOLIO_PAGES_DOMAIN" envDefault:"github.io"`
	FallbackUsername  string        `env:"GITFOLIO_FALLBACK_USERNAME" envDefault:"octocat"`
	HideFormWhenEmail bool          `env:"GITFOLIO_HIDE_FORM_WHEN_EMAIL"`
}

// ParseConfig loads environment defaults and parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.SiteDir, "site-dir", cfg.SiteDir, "directory holding site text resources")
	fs.StringVar(&cfg.GitHubBaseURL, "github-base-url", cfg.GitHubBaseURL, "GitHub API base URL")
	fs.StringVar(&cfg.Username, "username", cfg.Username, "GitHub username override")
	fs.StringVar(&cfg.PagesDomain, "pages-domain", cfg.PagesDomain, "hosting domain suffix for hostname-derived usernames")
	fs.StringVar(&cfg.FallbackUsername, "fallback-username", cfg.FallbackUsername, "username used when serving on a loopback host")
	fs.BoolVar(&cfg.HideFormWhenEmail, "hide-form-when-email", cfg.HideFormWhenEmail, "show a mailto notice instead of the contact form when an email is known")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the portfolio web server.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceWeb, func(ctx context.Context) error {
		loader := github.NewClient(cfg.GitHubBaseURL, &http.Client{Timeout: cfg.GitHubTimeout})

		var siteFS fs.FS
		if cfg.SiteDir != "" {
			if info, err := os.Stat(cfg.SiteDir); err == nil && info.IsDir() {
				siteFS = os.DirFS(cfg.SiteDir)
			}
		}

		server, err := web.NewServer(web.Config{
			HTTPAddr:          cfg.HTTPAddr,
			SiteFS:            siteFS,
			Loader:            loader,
			Username:          cfg.Username,
			PagesDomain:       cfg.PagesDomain,
			FallbackUsername:  cfg.FallbackUsername,
			HideFormWhenEmail: cfg.HideFormWhenEmail,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
