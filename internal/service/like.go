package service

import (
	"context"

	"github.com/deppfellow/blog-backend/internal/lib/job"
	"github.com/deppfellow/blog-backend/internal/mapper"
	"github.com/deppfellow/blog-backend/internal/model"
	"github.com/deppfellow/blog-backend/internal/repository"
	"github.com/deppfellow/blog-backend/internal/server"
)

type LikeService struct {
	server   *server.Server
	store    repository.Transactor
	notifier EngagementNotifier
}

func NewLikeService(s *server.Server, store repository.Transactor, notifier EngagementNotifier) *LikeService {
	return &LikeService{server: s, store: store, notifier: notifier}
}

// GetAllLikes applies the same filter precedence as GetAllComments.
func (ls *LikeService) GetAllLikes(ctx context.Context, filter model.RelationFilter) ([]model.Like, error) {
	kind := filter.Kind()
	log(ctx, ls.server).Debug().Stringer("filter", kind).Msg("request to get all likes")

	var likes []model.Like
	err := ls.store.WithinTx(ctx, repository.ReadOnly, func(repos *repository.Repositories) error {
		var err error
		switch kind {
		case model.FilterByUserAndPost:
			likes, err = repos.Likes.FindByUserIDAndPostID(ctx, *filter.UserID, *filter.PostID)
		case model.FilterByPost:
			likes, err = repos.Likes.FindByPostID(ctx, *filter.PostID)
		case model.FilterByUser:
			likes, err = repos.Likes.FindByUserID(ctx, *filter.UserID)
		default:
			likes, err = repos.Likes.FindAll(ctx)
		}
		return err
	})
	return likes, err
}

func (ls *LikeService) GetLikeByID(ctx context.Context, id int64) (*model.Like, error) {
	log(ctx, ls.server).Debug().Int64("like_id", id).Msg("request to get like")

	var like *model.Like
	err := ls.store.WithinTx(ctx, repository.ReadOnly, func(repos *repository.Repositories) error {
		var err error
		like, err = repos.Likes.FindByID(ctx, id)
		return err
	})
	return like, err
}

// SaveLike stores a new like. Repeated likes of the same post by the same
// user are all kept.
func (ls *LikeService) SaveLike(ctx context.Context, payload model.LikeCreatePayload) (*model.Like, error) {
	log(ctx, ls.server).Debug().
		Int64("user_id", payload.UserID).
		Int64("post_id", payload.PostID).
		Msg("request to save like")

	var saved *model.Like
	err := ls.store.WithinTx(ctx, repository.ReadWrite, func(repos *repository.Repositories) error {
		post, err := resolvePost(ctx, repos.Posts, payload.PostID)
		if err != nil {
			return err
		}
		user, err := resolveUser(ctx, repos.Users, payload.UserID)
		if err != nil {
			return err
		}

		saved, err = repos.Likes.Save(ctx, mapper.ToLike(post, user))
		return err
	})
	if err != nil {
		return nil, err
	}

	notifyEngagement(ctx, ls.server, ls.notifier, job.PostEngagementPayload{
		Kind:     job.EngagementLike,
		PostID:   saved.PostID,
		UserID:   saved.UserID,
		EntityID: saved.ID,
	})
	return saved, nil
}

func (ls *LikeService) DeleteLike(ctx context.Context, id int64) error {
	log(ctx, ls.server).Debug().Int64("like_id", id).Msg("request to delete like")

	return ls.store.WithinTx(ctx, repository.ReadWrite, func(repos *repository.Repositories) error {
		return repos.Likes.DeleteByID(ctx, id)
	})
}
