package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/readmebump/pkg/domain/interfaces"
	"github.com/m-mizutani/readmebump/pkg/domain/model"
	"github.com/m-mizutani/readmebump/pkg/utils/async"
)

// Dispatcher runs handler outside of the request that triggered it
type Dispatcher func(ctx context.Context, handler func(ctx context.Context) error)

type webhookUseCase struct {
	repo      model.RepoID
	releaseUC interfaces.ReleaseUseCase
	dispatch  Dispatcher
}

// WebhookOption configures the webhook use case
type WebhookOption func(*webhookUseCase)

// WithDispatcher replaces async.Dispatch
func WithDispatcher(d Dispatcher) WebhookOption {
	return func(uc *webhookUseCase) {
		uc.dispatch = d
	}
}

// NewWebhook creates a new instance of WebhookUseCase that only acts on tags
// of repo
func NewWebhook(repo model.RepoID, releaseUC interfaces.ReleaseUseCase, opts ...WebhookOption) *webhookUseCase {
	uc := &webhookUseCase{
		repo:      repo,
		releaseUC: releaseUC,
		dispatch:  async.Dispatch,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// ProcessEvent processes a webhook event. Tag events of the configured
// repository start a README bump in the background.
func (uc *webhookUseCase) ProcessEvent(ctx context.Context, event *model.WebhookEvent) error {
	logger := ctxlog.From(ctx)

	logger.Info("Processing webhook event",
		"id", event.ID,
		"type", event.Type,
		"action", event.Action,
		"repository", event.Repository,
		"sender", event.Sender,
		"ref", event.Ref,
		"supported", event.IsSupportedEvent(),
	)

	if !event.IsSupportedEvent() {
		logger.Warn("Unsupported event received",
			"type", event.Type,
			"action", event.Action,
		)
		return nil
	}

	if event.Repository != uc.repo.String() {
		logger.Warn("Ignoring event for another repository",
			"repository", event.Repository,
			"configured", uc.repo,
		)
		return nil
	}

	info := &model.ReleaseInfo{
		Repo:    uc.repo,
		TagRef:  event.Ref,
		Actor:   event.Sender,
		Trigger: event.Type,
	}

	uc.dispatch(ctx, func(ctx context.Context) error {
		return uc.releaseUC.ProcessRelease(ctx, info)
	})

	return nil
}
