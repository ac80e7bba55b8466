package github

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/fedora-notofonts/notofonts/pkg/domain/interfaces"
	"github.com/fedora-notofonts/notofonts/pkg/domain/model"
	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
)

const perPage = 100

type client struct {
	githubClient *github.Client
	httpClient   *http.Client
}

type options struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a GitHub client
type Option func(*options)

// WithBaseURL points the client at another API endpoint, e.g. GitHub Enterprise or a test server
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client used for asset downloads
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

// NewClient creates a new GitHub client authenticated with a personal access token
func NewClient(token string, opts ...Option) (interfaces.GitHubClient, error) {
	if token == "" {
		return nil, goerr.New("GitHub token is empty")
	}
	return newClient(github.NewClient(nil).WithAuthToken(token), opts...)
}

// NewAppClient creates a new GitHub client with App authentication
func NewAppClient(appID, installationID int64, privateKey []byte, opts ...Option) (interfaces.GitHubClient, error) {
	itr, err := ghinstallation.New(http.DefaultTransport, appID, installationID, privateKey)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub App transport",
			goerr.V("app_id", appID),
			goerr.V("installation_id", installationID),
		)
	}

	return newClient(github.NewClient(&http.Client{Transport: itr}), opts...)
}

func newClient(githubClient *github.Client, opts ...Option) (interfaces.GitHubClient, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.baseURL != "" {
		baseURL := o.baseURL
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid GitHub API base URL", goerr.V("base_url", o.baseURL))
		}
		githubClient.BaseURL = u
	}

	// Asset downloads redirect to storage hosts, so they go without API credentials
	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &client{
		githubClient: githubClient,
		httpClient:   httpClient,
	}, nil
}

// ListRepositories lists every repository of an organization, following pagination
func (c *client) ListRepositories(ctx context.Context, org, visibility string) ([]*model.Repository, error) {
	opt := &github.RepositoryListByOrgOptions{
		Type:        visibility,
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	var repos []*model.Repository
	for {
		page, resp, err := c.githubClient.Repositories.ListByOrg(ctx, org, opt)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list repositories",
				goerr.V("org", org),
				goerr.V("page", opt.Page),
			)
		}

		for _, r := range page {
			repos = append(repos, toRepository(r))
		}

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}

	return repos, nil
}

// GetRepository looks up a single repository by name
func (c *client) GetRepository(ctx context.Context, org, name string) (*model.Repository, error) {
	repo, resp, err := c.githubClient.Repositories.Get(ctx, org, name)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, goerr.Wrap(model.ErrRepositoryNotFound, "repository does not exist",
				goerr.V("org", org),
				goerr.V("repository", name),
			)
		}
		return nil, goerr.Wrap(err, "failed to get repository",
			goerr.V("org", org),
			goerr.V("repository", name),
		)
	}

	return toRepository(repo), nil
}

// ListReleases lists every release of a repository, following pagination
func (c *client) ListReleases(ctx context.Context, org, repo string) ([]*model.RawRelease, error) {
	opt := &github.ListOptions{PerPage: perPage}

	var releases []*model.RawRelease
	for {
		page, resp, err := c.githubClient.Repositories.ListReleases(ctx, org, repo, opt)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list releases",
				goerr.V("org", org),
				goerr.V("repository", repo),
				goerr.V("page", opt.Page),
			)
		}

		for _, r := range page {
			releases = append(releases, toRawRelease(r))
		}

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}

	return releases, nil
}

// DownloadAsset streams a release asset to w
func (c *client) DownloadAsset(ctx context.Context, assetURL string, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, assetURL, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to create download request", goerr.V("url", assetURL))
	}
	req.Header.Set("Accept", "application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to download asset", goerr.V("url", assetURL))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return goerr.New("unexpected status code",
			goerr.V("url", assetURL),
			goerr.V("status_code", resp.StatusCode),
		)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return goerr.Wrap(err, "failed to read asset body", goerr.V("url", assetURL))
	}
	return nil
}

func toRepository(r *github.Repository) *model.Repository {
	return &model.Repository{
		Name:     r.GetName(),
		Archived: r.GetArchived(),
	}
}

func toRawRelease(r *github.RepositoryRelease) *model.RawRelease {
	rel := &model.RawRelease{
		Title:   r.GetName(),
		TagName: r.GetTagName(),
	}
	for _, a := range r.Assets {
		rel.Assets = append(rel.Assets, model.Asset{
			Name: a.GetName(),
			URL:  a.GetBrowserDownloadURL(),
			Size: int64(a.GetSize()),
		})
	}
	return rel
}
