package runpod

import (
	"context"
	"time"
)

// blocking runs op under its own context bounded by timeout and releases that
// context as soon as op returns. Each invocation gets a fresh context; op's
// result and error are returned unchanged.
func blocking[T any](ctx context.Context, timeout time.Duration, op func(context.Context) (T, error)) (T, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return op(callCtx)
}
