package retry

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
)

// Operation is the action that is attempted, possibly several times
type Operation func(ctx context.Context) error

// Recovery is called after a failed attempt and before the next one. attempt
// is 1 for the first recovery. Returning an error stops retrying.
type Recovery func(ctx context.Context, attempt int, cause error) error

// Do runs op until it succeeds, recovering between attempts with onRetry.
//
// op is run at most maxRetries+1 times and onRetry at most maxRetries times.
// Once op has failed maxRetries+1 times its last error is returned wrapped.
// An error from onRetry is returned immediately without another attempt.
// There is no delay between attempts.
//
// The returned count is the number of recoveries that completed.
func Do(ctx context.Context, maxRetries int, op Operation, onRetry Recovery) (int, error) {
	recovered := 0
	for {
		err := op(ctx)
		if err == nil {
			return recovered, nil
		}

		if recovered >= maxRetries {
			return recovered, goerr.Wrap(err, "retries exhausted",
				goerr.V("max_retries", maxRetries),
				goerr.V("attempts", recovered+1),
			)
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return recovered, goerr.Wrap(ctxErr, "retry cancelled", goerr.V("last_error", err.Error()))
		}

		if onRetry != nil {
			if rErr := onRetry(ctx, recovered+1, err); rErr != nil {
				return recovered, goerr.Wrap(rErr, "recovery failed", goerr.V("attempt", recovered+1))
			}
		}
		recovered++
	}
}
