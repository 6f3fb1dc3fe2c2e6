package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/deppfellow/blog-backend/internal/errs"
	"github.com/deppfellow/blog-backend/internal/model"
	"github.com/deppfellow/blog-backend/internal/repository"
	"github.com/hibiken/asynq"
)

// InitHandlers gives the worker read access to the store, which it uses to
// find the owner of an engaged post.
func (j *JobService) InitHandlers(store repository.Transactor) {
	j.store = store
}

// handlePostEngagementTask tells the post owner about a new comment or like.
// Engagement by the owner on their own post is ignored. A post deleted
// before the task runs is dropped without retry.
func (j *JobService) handlePostEngagementTask(ctx context.Context, t *asynq.Task) error {
	var p PostEngagementPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal post engagement payload: %w: %w", err, asynq.SkipRetry)
	}

	if j.store == nil {
		return errors.New("post engagement handler used before InitHandlers")
	}

	var post *model.Post
	err := j.store.WithinTx(ctx, repository.ReadOnly, func(repos *repository.Repositories) error {
		var err error
		post, err = repos.Posts.FindByID(ctx, p.PostID)
		return err
	})
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			j.logger.Info().
				Str("kind", string(p.Kind)).
				Int64("post_id", p.PostID).
				Msg("Post no longer exists, dropping engagement notification")
			return fmt.Errorf("post %d gone: %w", p.PostID, asynq.SkipRetry)
		}
		return err
	}

	if post.UserID == p.UserID {
		return nil
	}

	j.logger.Info().
		Str("kind", string(p.Kind)).
		Int64("post_id", p.PostID).
		Int64("owner_id", post.UserID).
		Int64("actor_id", p.UserID).
		Int64("entity_id", p.EntityID).
		Msg("Notifying post owner of new engagement")

	return nil
}
