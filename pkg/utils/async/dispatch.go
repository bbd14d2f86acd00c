package async

import (
	"context"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
)

// Dispatch runs handler in a new goroutine, detached from ctx's cancellation.
// The logger of ctx is carried over with a "dispatch_id" attribute so that
// all logs of one background run can be correlated. Panics and returned
// errors are logged, not propagated.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := newBackgroundContext(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()
				logger := ctxlog.From(newCtx)
				logger.Error("panic in async handler",
					"recover", r,
					"stack", string(stack))
			}
		}()

		if err := handler(newCtx); err != nil {
			logger := ctxlog.From(newCtx)
			logger.Error("error in async handler", "error", err)
		}
	}()
}

func newBackgroundContext(ctx context.Context) context.Context {
	logger := ctxlog.From(ctx).With("dispatch_id", uuid.NewString())
	return ctxlog.With(context.Background(), logger)
}
