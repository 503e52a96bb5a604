package retry

import (
	"context"

	"github.com/cenkalti/backoff/v4"
)

// Attempts runs op at most n times without waiting between calls.
// Used to ask the user again after malformed input.
func Attempts(ctx context.Context, n int, op func() error, shouldRetry func(error) bool) error {
	if n < 1 {
		n = 1
	}

	bo := backoff.WithMaxRetries(&backoff.ZeroBackOff{}, uint64(n-1))

	return backoff.Retry(permanentUnless(op, shouldRetry), backoff.WithContext(bo, ctx))
}

func permanentUnless(op func() error, shouldRetry func(error) bool) func() error {
	return func() error {
		if err := op(); err != nil {
			if shouldRetry != nil && shouldRetry(err) {
				return err
			}

			return backoff.Permanent(err)
		}

		return nil
	}
}
