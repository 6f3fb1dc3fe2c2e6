package service

import (
	"context"

	"github.com/deppfellow/blog-backend/internal/lib/job"
	"github.com/deppfellow/blog-backend/internal/server"
)

// EngagementNotifier queues the notification sent when a post receives a
// comment or a like.
type EngagementNotifier interface {
	EnqueuePostEngagement(ctx context.Context, payload job.PostEngagementPayload) error
}

// notifyEngagement runs after the write has committed. A failure to enqueue
// is logged and never fails the caller.
func notifyEngagement(ctx context.Context, s *server.Server, notifier EngagementNotifier, payload job.PostEngagementPayload) {
	if notifier == nil {
		return
	}

	if err := notifier.EnqueuePostEngagement(ctx, payload); err != nil {
		log(ctx, s).Warn().
			Err(err).
			Str("kind", string(payload.Kind)).
			Int64("post_id", payload.PostID).
			Msg("failed to enqueue post engagement")
	}
}
