package interfaces

import (
	"context"

	"github.com/m-mizutani/readmebump/pkg/domain/model"
)

// GitHubClient defines operations for interacting with GitHub API
type GitHubClient interface {
	// GetRepository looks up clone URL and default branch of a repository
	GetRepository(ctx context.Context, repo model.RepoID) (*model.RepositoryInfo, error)
}
