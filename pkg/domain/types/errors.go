package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrTagPrecondition marks errors raised before any remote operation, such
	// as missing configuration or a missing README.
	ErrTagPrecondition = goerr.NewTag("precondition")

	// ErrTagPublish marks errors raised while pushing the version bump.
	ErrTagPublish = goerr.NewTag("publish")
)
