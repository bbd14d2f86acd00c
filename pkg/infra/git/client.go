package git

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/readmebump/pkg/domain/interfaces"
	"github.com/m-mizutani/readmebump/pkg/domain/model"
	"github.com/m-mizutani/readmebump/pkg/domain/types"
)

const remoteName = "origin"

// tokenUsername is used when a token is given without a user name
const tokenUsername = "x-access-token"

type client struct {
	auth transport.AuthMethod
}

// Option configures the git client
type Option func(*client)

// WithBasicAuth authenticates HTTPS transport with username and token. This
// is the same credential that would otherwise be embedded in the clone URL.
func WithBasicAuth(username, token string) Option {
	return func(c *client) {
		if token == "" {
			return
		}
		if username == "" {
			username = tokenUsername
		}
		c.auth = &http.BasicAuth{
			Username: username,
			Password: token,
		}
	}
}

// NewClient creates a go-git backed GitClient
func NewClient(opts ...Option) interfaces.GitClient {
	c := &client{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Clone clones a single branch into dir
func (c *client) Clone(ctx context.Context, url, branch, dir string) (interfaces.GitRepository, error) {
	logger := ctxlog.From(ctx)

	opts := &git.CloneOptions{
		URL:          url,
		Auth:         c.auth,
		SingleBranch: true,
	}
	if branch != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(branch)
	}

	repo, err := git.PlainCloneContext(ctx, dir, false, opts)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to clone repository", goerr.V("dir", dir), goerr.V("branch", branch))
	}

	head, err := repo.Head()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve HEAD after clone", goerr.V("dir", dir))
	}
	if !head.Name().IsBranch() {
		return nil, goerr.New("cloned HEAD is not a branch", goerr.V("head", head.Name().String()))
	}

	logger.Debug("Cloned repository",
		"dir", dir,
		"branch", head.Name().Short(),
		"commit", head.Hash().String(),
	)

	return &repository{
		repo:   repo,
		dir:    dir,
		branch: head.Name().Short(),
		auth:   c.auth,
	}, nil
}

type repository struct {
	repo   *git.Repository
	dir    string
	branch string
	auth   transport.AuthMethod
}

func (r *repository) Dir() string { return r.dir }

// Commit stages path and records a commit authored by author
func (r *repository) Commit(ctx context.Context, path, message string, author model.Signature) (string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return "", goerr.Wrap(err, "failed to open worktree")
	}

	if _, err := wt.Add(path); err != nil {
		return "", goerr.Wrap(err, "failed to stage file", goerr.V("path", path))
	}

	hash, err := wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  author.Name,
			Email: author.Email,
			When:  time.Now(),
		},
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to commit", goerr.V("path", path))
	}

	ctxlog.From(ctx).Debug("Created commit", "commit", hash.String(), "path", path)
	return hash.String(), nil
}

// Push publishes the local branch to the same branch on origin. A push with
// nothing new is a success.
func (r *repository) Push(ctx context.Context) error {
	refSpec := config.RefSpec(fmt.Sprintf("refs/heads/%s:refs/heads/%s", r.branch, r.branch))

	err := r.repo.PushContext(ctx, &git.PushOptions{
		RemoteName: remoteName,
		RefSpecs:   []config.RefSpec{refSpec},
		Auth:       r.auth,
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return goerr.Wrap(err, "failed to push",
			goerr.V("branch", r.branch),
			goerr.T(types.ErrTagPublish),
		)
	}
	return nil
}

// Resync fetches origin's branch and hard-resets onto it
func (r *repository) Resync(ctx context.Context) error {
	refSpec := config.RefSpec(fmt.Sprintf("+refs/heads/%s:refs/remotes/%s/%s", r.branch, remoteName, r.branch))

	err := r.repo.FetchContext(ctx, &git.FetchOptions{
		RemoteName: remoteName,
		RefSpecs:   []config.RefSpec{refSpec},
		Auth:       r.auth,
		Force:      true,
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return goerr.Wrap(err, "failed to fetch", goerr.V("branch", r.branch))
	}

	remoteRef, err := r.repo.Reference(plumbing.NewRemoteReferenceName(remoteName, r.branch), true)
	if err != nil {
		return goerr.Wrap(err, "failed to resolve remote branch", goerr.V("branch", r.branch))
	}

	wt, err := r.repo.Worktree()
	if err != nil {
		return goerr.Wrap(err, "failed to open worktree")
	}

	if err := wt.Reset(&git.ResetOptions{
		Commit: remoteRef.Hash(),
		Mode:   git.HardReset,
	}); err != nil {
		return goerr.Wrap(err, "failed to reset onto remote branch",
			goerr.V("branch", r.branch),
			goerr.V("commit", remoteRef.Hash().String()),
		)
	}

	ctxlog.From(ctx).Debug("Resynced with remote",
		"branch", r.branch,
		"commit", remoteRef.Hash().String(),
	)
	return nil
}
