package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/readmebump/pkg/domain/interfaces"
	"github.com/m-mizutani/readmebump/pkg/domain/model"
)

type releaseUseCase struct {
	bumpUC interfaces.BumpUseCase
}

// NewRelease creates a new instance of ReleaseUseCase
func NewRelease(bumpUC interfaces.BumpUseCase) interfaces.ReleaseUseCase {
	return &releaseUseCase{
		bumpUC: bumpUC,
	}
}

// ProcessRelease bumps the README of the released repository in a temporary
// clone
func (uc *releaseUseCase) ProcessRelease(ctx context.Context, info *model.ReleaseInfo) error {
	logger := ctxlog.From(ctx)

	logger.Info("Processing release",
		"repo", info.Repo,
		"tag_ref", info.TagRef,
		"actor", info.Actor,
		"trigger", info.Trigger,
	)

	version, err := model.ParseTagRef(info.TagRef)
	if err != nil {
		return goerr.Wrap(err, "invalid release tag", goerr.V("repo", info.Repo))
	}

	result, err := uc.bumpUC.Bump(ctx, &model.BumpRequest{
		Repo:    info.Repo,
		Version: version,
	})
	if err != nil {
		return goerr.Wrap(err, "failed to bump README for release",
			goerr.V("repo", info.Repo),
			goerr.V("version", version),
		)
	}

	logger.Info("Successfully processed release",
		"repo", info.Repo,
		"version", version,
		"readme", result.Readme,
		"changed", result.Changed,
		"retries", result.Retries,
	)
	return nil
}
