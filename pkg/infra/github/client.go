package github

import (
	"context"
	"net/http"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/readmebump/pkg/domain/interfaces"
	"github.com/m-mizutani/readmebump/pkg/domain/model"
)

type client struct {
	githubClient *github.Client
}

// Option configures the GitHub client
type Option func(*clientConfig)

type clientConfig struct {
	baseURL    string
	httpClient *http.Client
}

// WithBaseURL points the client at a GitHub Enterprise API endpoint
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new GitHub client authenticated with a token
func NewClient(token string, opts ...Option) (interfaces.GitHubClient, error) {
	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	githubClient := github.NewClient(cfg.httpClient).WithAuthToken(token)

	if cfg.baseURL != "" {
		var err error
		githubClient, err = githubClient.WithEnterpriseURLs(cfg.baseURL, cfg.baseURL)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to set GitHub API URL", goerr.V("url", cfg.baseURL))
		}
	}

	return &client{
		githubClient: githubClient,
	}, nil
}

// GetRepository looks up clone URL and default branch of a repository
func (c *client) GetRepository(ctx context.Context, repo model.RepoID) (*model.RepositoryInfo, error) {
	r, _, err := c.githubClient.Repositories.Get(ctx, repo.Owner(), repo.Name())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get repository", goerr.V("repo", repo))
	}

	if r.GetCloneURL() == "" {
		return nil, goerr.New("repository has no clone URL", goerr.V("repo", repo))
	}

	return &model.RepositoryInfo{
		ID:            repo,
		CloneURL:      r.GetCloneURL(),
		DefaultBranch: r.GetDefaultBranch(),
	}, nil
}
