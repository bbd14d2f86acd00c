package interfaces

import (
	"context"

	"github.com/m-mizutani/readmebump/pkg/domain/model"
)

// Notifier reports bump outcomes to people
type Notifier interface {
	NotifySuccess(ctx context.Context, req *model.BumpRequest, result *model.BumpResult) error
	NotifyFailure(ctx context.Context, req *model.BumpRequest, err error) error
}
