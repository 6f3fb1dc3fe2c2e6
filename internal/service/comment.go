package service

import (
	"context"

	"github.com/deppfellow/blog-backend/internal/lib/job"
	"github.com/deppfellow/blog-backend/internal/mapper"
	"github.com/deppfellow/blog-backend/internal/model"
	"github.com/deppfellow/blog-backend/internal/repository"
	"github.com/deppfellow/blog-backend/internal/server"
)

type CommentService struct {
	server   *server.Server
	store    repository.Transactor
	notifier EngagementNotifier
}

func NewCommentService(s *server.Server, store repository.Transactor, notifier EngagementNotifier) *CommentService {
	return &CommentService{server: s, store: store, notifier: notifier}
}

// GetAllComments lists comments matching filter. When both ids are given
// only comments by that user on that post are returned.
func (cs *CommentService) GetAllComments(ctx context.Context, filter model.RelationFilter) ([]model.Comment, error) {
	kind := filter.Kind()
	log(ctx, cs.server).Debug().Stringer("filter", kind).Msg("request to get all comments")

	var comments []model.Comment
	err := cs.store.WithinTx(ctx, repository.ReadOnly, func(repos *repository.Repositories) error {
		var err error
		switch kind {
		case model.FilterByUserAndPost:
			comments, err = repos.Comments.FindByUserIDAndPostID(ctx, *filter.UserID, *filter.PostID)
		case model.FilterByPost:
			comments, err = repos.Comments.FindByPostID(ctx, *filter.PostID)
		case model.FilterByUser:
			comments, err = repos.Comments.FindByUserID(ctx, *filter.UserID)
		default:
			comments, err = repos.Comments.FindAll(ctx)
		}
		return err
	})
	return comments, err
}

func (cs *CommentService) GetCommentByID(ctx context.Context, id int64) (*model.Comment, error) {
	log(ctx, cs.server).Debug().Int64("comment_id", id).Msg("request to get comment")

	var comment *model.Comment
	err := cs.store.WithinTx(ctx, repository.ReadOnly, func(repos *repository.Repositories) error {
		var err error
		comment, err = repos.Comments.FindByID(ctx, id)
		return err
	})
	return comment, err
}

// SaveComment requires both the user and the post to exist.
func (cs *CommentService) SaveComment(ctx context.Context, payload model.CommentCreatePayload) (*model.Comment, error) {
	log(ctx, cs.server).Debug().
		Int64("user_id", payload.UserID).
		Int64("post_id", payload.PostID).
		Msg("request to save comment")

	var saved *model.Comment
	err := cs.store.WithinTx(ctx, repository.ReadWrite, func(repos *repository.Repositories) error {
		user, err := resolveUser(ctx, repos.Users, payload.UserID)
		if err != nil {
			return err
		}
		post, err := resolvePost(ctx, repos.Posts, payload.PostID)
		if err != nil {
			return err
		}

		saved, err = repos.Comments.Save(ctx, mapper.ToComment(payload, user, post))
		return err
	})
	if err != nil {
		return nil, err
	}

	notifyEngagement(ctx, cs.server, cs.notifier, job.PostEngagementPayload{
		Kind:     job.EngagementComment,
		PostID:   saved.PostID,
		UserID:   saved.UserID,
		EntityID: saved.ID,
	})
	return saved, nil
}

// UpdateComment changes the text only.
func (cs *CommentService) UpdateComment(ctx context.Context, payload model.CommentUpdatePayload, id int64) (*model.Comment, error) {
	log(ctx, cs.server).Debug().Int64("comment_id", id).Msg("request to update comment")

	var updated *model.Comment
	err := cs.store.WithinTx(ctx, repository.ReadWrite, func(repos *repository.Repositories) error {
		stored, err := repos.Comments.FindByID(ctx, id)
		if err != nil {
			return err
		}

		updated, err = repos.Comments.Save(ctx, mapper.ApplyCommentUpdate(*stored, payload))
		return err
	})
	return updated, err
}

func (cs *CommentService) DeleteComment(ctx context.Context, id int64) error {
	log(ctx, cs.server).Debug().Int64("comment_id", id).Msg("request to delete comment")

	return cs.store.WithinTx(ctx, repository.ReadWrite, func(repos *repository.Repositories) error {
		return repos.Comments.DeleteByID(ctx, id)
	})
}
