package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/readmebump/pkg/domain/interfaces"
	"github.com/m-mizutani/readmebump/pkg/domain/model"
)

// DefaultMaxPublishRetries bounds rebase-and-retry cycles after a rejected push
const DefaultMaxPublishRetries = 5

type bumpUseCase struct {
	githubClient interfaces.GitHubClient
	gitClient    interfaces.GitClient
	notifier     interfaces.Notifier
	author       model.Signature
	tool         string
	maxRetries   int

	// Serializes runs so one process never works on the repository twice at once
	mu sync.Mutex
}

// BumpOption configures the bump use case
type BumpOption func(*bumpUseCase)

// WithNotifier reports every run's outcome to n
func WithNotifier(n interfaces.Notifier) BumpOption {
	return func(uc *bumpUseCase) {
		uc.notifier = n
	}
}

// WithTool sets the package manager name used in "<tool> add" examples
func WithTool(tool string) BumpOption {
	return func(uc *bumpUseCase) {
		uc.tool = tool
	}
}

// WithMaxRetries overrides DefaultMaxPublishRetries
func WithMaxRetries(n int) BumpOption {
	return func(uc *bumpUseCase) {
		uc.maxRetries = n
	}
}

// NewBump creates a new instance of BumpUseCase
func NewBump(
	githubClient interfaces.GitHubClient,
	gitClient interfaces.GitClient,
	author model.Signature,
	opts ...BumpOption,
) interfaces.BumpUseCase {
	uc := &bumpUseCase{
		githubClient: githubClient,
		gitClient:    gitClient,
		author:       author,
		tool:         model.DefaultTool,
		maxRetries:   DefaultMaxPublishRetries,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Bump clones the repository, rewrites version references in its README,
// commits and publishes the change.
func (uc *bumpUseCase) Bump(ctx context.Context, req *model.BumpRequest) (*model.BumpResult, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	logger := ctxlog.From(ctx).With("repo", req.Repo, "version", req.Version)
	ctx = ctxlog.With(ctx, logger)

	result, err := uc.bump(ctx, req)

	if uc.notifier != nil {
		var nErr error
		if err != nil {
			nErr = uc.notifier.NotifyFailure(ctx, req, err)
		} else {
			nErr = uc.notifier.NotifySuccess(ctx, req, result)
		}
		if nErr != nil {
			logger.Warn("Failed to send notification", "error", nErr)
		}
	}

	return result, err
}

func (uc *bumpUseCase) bump(ctx context.Context, req *model.BumpRequest) (*model.BumpResult, error) {
	logger := ctxlog.From(ctx)

	if !req.Version.IsSemver() {
		logger.Warn("Version is not a semantic version, substituting it verbatim")
	}

	workDir := req.WorkDir
	if workDir == "" {
		tempDir, err := os.MkdirTemp("", "readmebump-*")
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create temporary directory")
		}
		defer func() {
			if err := os.RemoveAll(tempDir); err != nil {
				logger.Warn("Failed to clean up temporary directory", "temp_dir", tempDir, "error", err)
			}
		}()
		workDir = filepath.Join(tempDir, req.Repo.Name())
	}

	info, err := uc.githubClient.GetRepository(ctx, req.Repo)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to look up repository")
	}

	logger.Info("Cloning repo", "branch", info.DefaultBranch, "dir", workDir)
	repo, err := uc.gitClient.Clone(ctx, info.CloneURL, info.DefaultBranch, workDir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to clone repository")
	}

	readme, err := model.FindReadme(repo.Dir())
	if err != nil {
		logger.Error("Unable to find README")
		return nil, err
	}

	rules := model.DefaultRules(req.Repo, uc.tool)
	result := &model.BumpResult{Readme: readme}
	message := fmt.Sprintf("Update %s examples to reflect new version %s", readme, req.Version)

	// apply rewrites the README in the current worktree and commits it when
	// anything changed. It runs once up front and again after every resync.
	apply := func(ctx context.Context) error {
		logger.Info("Updating versions in README", "readme", readme)
		changed, err := rewriteFile(filepath.Join(repo.Dir(), readme), rules, req.Version)
		if err != nil {
			return err
		}

		result.Changed = changed
		result.CommitHash = ""
		if !changed {
			logger.Info("README already references the version, nothing to commit", "readme", readme)
			return nil
		}

		logger.Info("Adding git changes", "readme", readme)
		hash, err := repo.Commit(ctx, readme, message, uc.author)
		if err != nil {
			return goerr.Wrap(err, "failed to commit README update")
		}
		result.CommitHash = hash
		return nil
	}

	if err := apply(ctx); err != nil {
		return nil, err
	}
	if !result.Changed {
		return result, nil
	}

	retries, err := uc.publish(ctx, repo, apply)
	result.Retries = retries
	if err != nil {
		return result, err
	}

	if !result.Changed {
		logger.Info("Remote already has the README update", "readme", readme, "retries", retries)
		return result, nil
	}

	logger.Info("Published README update",
		"readme", readme,
		"commit", result.CommitHash,
		"retries", retries,
	)
	return result, nil
}

// rewriteFile applies rules to the file at path and reports whether its
// content changed. File mode is preserved.
func rewriteFile(path string, rules []model.SubstitutionRule, version model.Version) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, goerr.Wrap(err, "failed to stat README", goerr.V("path", path))
	}

	raw, err := os.ReadFile(path) // #nosec G304 -- path is a fixed README name inside the clone
	if err != nil {
		return false, goerr.Wrap(err, "failed to read README", goerr.V("path", path))
	}

	text := string(raw)
	updated := model.Rewrite(text, rules, version)
	if updated == text {
		return false, nil
	}

	if err := os.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
		return false, goerr.Wrap(err, "failed to write README", goerr.V("path", path))
	}
	return true, nil
}
