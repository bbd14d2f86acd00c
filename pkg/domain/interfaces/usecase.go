package interfaces

import (
	"context"

	"github.com/m-mizutani/readmebump/pkg/domain/model"
)

// WebhookUseCase defines the interface for webhook event processing
type WebhookUseCase interface {
	// ProcessEvent processes a webhook event
	ProcessEvent(ctx context.Context, event *model.WebhookEvent) error
}

// BumpUseCase rewrites README version references and publishes the change
type BumpUseCase interface {
	// Bump runs one clone, rewrite, commit and publish cycle
	Bump(ctx context.Context, req *model.BumpRequest) (*model.BumpResult, error)
}

// ReleaseUseCase handles a release announced by a webhook
type ReleaseUseCase interface {
	// ProcessRelease bumps the README of the released repository
	ProcessRelease(ctx context.Context, info *model.ReleaseInfo) error
}
