package queue

import (
	"context"

	"github.com/dmitrijs2005/perono/internal/logging"
	"github.com/dmitrijs2005/perono/internal/session"
)

// Forward publishes every transition read from in until in is closed or
// ctx is done. Publish failures are logged and the loop goes on.
func Forward(ctx context.Context, in <-chan session.Transition, pub Publisher, logger logging.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case tr, ok := <-in:
			if !ok {
				return
			}
			key := RoutingKey(tr)
			if err := pub.Publish(ctx, key, NewTransitionEvent(tr)); err != nil {
				logger.Warn(ctx, "transition not published", "key", key, "error", err)
			}
		}
	}
}
