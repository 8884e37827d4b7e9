package mongo

import (
	"context"
	"time"
)

// OpTimeout bounds every repository call.
const OpTimeout = 5 * time.Second

// WithRepoTimeout derives a context that expires within d. A parent that is already
// done, or whose deadline is at most d away, is returned as is together with a no-op
// cancel, so callers can always defer cancel().
func WithRepoTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if ctx.Err() != nil {
		return ctx, func() {}
	}
	if dl, ok := ctx.Deadline(); ok && time.Until(dl) <= d {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

func repoCtx(parent context.Context) (context.Context, context.CancelFunc) {
	return WithRepoTimeout(parent, OpTimeout)
}
