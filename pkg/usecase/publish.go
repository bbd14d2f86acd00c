package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/readmebump/pkg/domain/interfaces"
	"github.com/m-mizutani/readmebump/pkg/domain/types"
	"github.com/m-mizutani/readmebump/pkg/utils/retry"
)

// publish pushes the local commit. When the remote rejects the push, the
// local branch is resynced onto the remote tip, replay re-applies the change
// and the push is attempted again, at most uc.maxRetries times. Retries are
// immediate.
func (uc *bumpUseCase) publish(ctx context.Context, repo interfaces.GitRepository, replay retry.Operation) (int, error) {
	logger := ctxlog.From(ctx)

	push := func(ctx context.Context) error {
		logger.Info("Pushing updated README")
		return repo.Push(ctx)
	}

	integrate := func(ctx context.Context, attempt int, cause error) error {
		logger.Warn("Failed to push. Going to pull and try again.",
			"attempt", attempt,
			"max_retries", uc.maxRetries,
			"error", cause,
		)

		if err := repo.Resync(ctx); err != nil {
			return goerr.Wrap(err, "failed to pull remote changes")
		}
		return replay(ctx)
	}

	retries, err := retry.Do(ctx, uc.maxRetries, push, integrate)
	if err != nil {
		logger.Error("Failed to push again. Giving up.", "retries", retries, "error", err)
		return retries, goerr.Wrap(err, "failed to publish README update",
			goerr.V("retries", retries),
			goerr.T(types.ErrTagPublish),
		)
	}

	return retries, nil
}
