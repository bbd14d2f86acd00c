package interfaces

import (
	"context"

	"github.com/m-mizutani/readmebump/pkg/domain/model"
)

// GitClient clones repositories
type GitClient interface {
	// Clone clones branch of the repository at url into dir. An empty branch
	// clones the remote HEAD.
	Clone(ctx context.Context, url, branch, dir string) (GitRepository, error)
}

// GitRepository is a local clone tracking a single remote branch
type GitRepository interface {
	// Dir returns the worktree root
	Dir() string

	// Commit stages path (relative to Dir) and commits it
	Commit(ctx context.Context, path, message string, author model.Signature) (string, error)

	// Push publishes the local branch. The remote rejects it when it has moved
	// past the local branch's base.
	Push(ctx context.Context) error

	// Resync fetches the remote branch and hard-resets the local branch onto
	// its tip, dropping local commits so they can be replayed.
	Resync(ctx context.Context) error
}
