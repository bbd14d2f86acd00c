package config

import (
	"github.com/m-mizutani/readmebump/pkg/domain/interfaces"
	"github.com/m-mizutani/readmebump/pkg/domain/model"
	githubinfra "github.com/m-mizutani/readmebump/pkg/infra/github"
	"github.com/urfave/cli/v3"
)

// GitHub holds GitHub API configuration
type GitHub struct {
	Token      string `masq:"secret"`
	Repository string
	APIURL     string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "api-credentials",
			Usage:       "GitHub access token used for the API and git transport",
			Destination: &c.Token,
			Sources:     cli.EnvVars("API_CREDENTIALS"),
		},
		&cli.StringFlag{
			Name:        "repository",
			Usage:       "Target repository (owner/name)",
			Destination: &c.Repository,
			Sources:     cli.EnvVars("GITHUB_REPOSITORY"),
		},
		&cli.StringFlag{
			Name:        "api-url",
			Usage:       "GitHub REST API URL; empty for github.com",
			Destination: &c.APIURL,
			Sources:     cli.EnvVars("GITHUB_API_URL"),
		},
	}
}

// Missing returns the environment keys that are required but unset
func (c *GitHub) Missing() []string {
	var missing []string
	if c.Token == "" {
		missing = append(missing, "API_CREDENTIALS")
	}
	if c.Repository == "" {
		missing = append(missing, "GITHUB_REPOSITORY")
	}
	return missing
}

// ApplyFile fills unset fields from the configuration file
func (c *GitHub) ApplyFile(f *File) {
	if c.Repository == "" {
		c.Repository = f.Repository
	}
	if c.APIURL == "" {
		c.APIURL = f.APIURL
	}
}

// RepoID parses Repository
func (c *GitHub) RepoID() (model.RepoID, error) {
	return model.ParseRepoID(c.Repository)
}

// NewClient builds the repository lookup client
func (c *GitHub) NewClient() (interfaces.GitHubClient, error) {
	var opts []githubinfra.Option
	if c.APIURL != "" {
		opts = append(opts, githubinfra.WithBaseURL(c.APIURL))
	}
	return githubinfra.NewClient(c.Token, opts...)
}
