// Package github fetches the portfolio owner's public profile and
// repositories from the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/louisbranch/gitfolio/internal/errors"
)

const defaultBaseURL = "https://api.github.com"

// repoPageSize caps the repository listing to a single page.
const repoPageSize = 100

var tracer = otel.Tracer("github.com/louisbranch/gitfolio/internal/github")

// HTTPClient issues outbound HTTP requests. *http.Client satisfies it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client reads public profile data from the GitHub API. All requests are
// unauthenticated and read-only.
type Client struct {
	baseURL    string
	httpClient HTTPClient
}

// NewClient builds a Client against baseURL, defaulting to the public API.
func NewClient(baseURL string, httpClient HTTPClient) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

// LoadResult carries the outcome of a successful portfolio load.
type LoadResult struct {
	Profile  Profile
	Projects []Repository
}

// Load fetches the user profile and repository list concurrently and derives
// the project list. Both requests must succeed; any HTTP or decode failure
// collapses the whole load into a single unavailable condition so callers
// never render a partial page.
func (c *Client) Load(ctx context.Context, username string) (LoadResult, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return LoadResult{}, apperrors.EK(apperrors.KindInvalidInput, "error.loading", "github: username is required")
	}

	ctx, span := tracer.Start(ctx, "github.Load")
	span.SetAttributes(attribute.String("github.username", username))
	defer span.End()

	var (
		profile Profile
		repos   []Repository
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return c.get(groupCtx, "/users/"+url.PathEscape(username), &profile)
	})
	group.Go(func() error {
		path := fmt.Sprintf("/users/%s/repos?sort=updated&per_page=%d", url.PathEscape(username), repoPageSize)
		return c.get(groupCtx, path, &repos)
	})
	if err := group.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "portfolio load failed")
		return LoadResult{}, apperrors.Wrap(apperrors.KindUnavailable, "github: portfolio load failed", err)
	}

	return LoadResult{Profile: profile, Projects: TopProjects(repos)}, nil
}

func (c *Client) get(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("request %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
