package service

import (
	"context"

	"github.com/deppfellow/blog-backend/internal/mapper"
	"github.com/deppfellow/blog-backend/internal/model"
	"github.com/deppfellow/blog-backend/internal/repository"
	"github.com/deppfellow/blog-backend/internal/server"
)

type PostService struct {
	server *server.Server
	store  repository.Transactor
}

func NewPostService(s *server.Server, store repository.Transactor) *PostService {
	return &PostService{server: s, store: store}
}

// GetAllPosts lists the posts owned by userID, or every post when userID is nil.
func (ps *PostService) GetAllPosts(ctx context.Context, userID *int64) ([]model.Post, error) {
	event := log(ctx, ps.server).Debug()
	if userID != nil {
		event = event.Int64("user_id", *userID)
	}
	event.Msg("request to get all posts")

	var posts []model.Post
	err := ps.store.WithinTx(ctx, repository.ReadOnly, func(repos *repository.Repositories) error {
		var err error
		if userID != nil {
			posts, err = repos.Posts.FindByUserID(ctx, *userID)
		} else {
			posts, err = repos.Posts.FindAll(ctx)
		}
		return err
	})
	return posts, err
}

func (ps *PostService) GetPostByID(ctx context.Context, id int64) (*model.Post, error) {
	log(ctx, ps.server).Debug().Int64("post_id", id).Msg("request to get post")

	var post *model.Post
	err := ps.store.WithinTx(ctx, repository.ReadOnly, func(repos *repository.Repositories) error {
		var err error
		post, err = repos.Posts.FindByID(ctx, id)
		return err
	})
	return post, err
}

// SavePost creates a post for an existing user.
func (ps *PostService) SavePost(ctx context.Context, payload model.PostCreatePayload) (*model.Post, error) {
	log(ctx, ps.server).Debug().Int64("user_id", payload.UserID).Msg("request to save post")

	var saved *model.Post
	err := ps.store.WithinTx(ctx, repository.ReadWrite, func(repos *repository.Repositories) error {
		owner, err := resolveUser(ctx, repos.Users, payload.UserID)
		if err != nil {
			return err
		}

		saved, err = repos.Posts.Save(ctx, mapper.ToPost(payload, owner))
		return err
	})
	return saved, err
}

// UpdatePost changes title and text. The owner is kept.
func (ps *PostService) UpdatePost(ctx context.Context, payload model.PostUpdatePayload, id int64) (*model.Post, error) {
	log(ctx, ps.server).Debug().Int64("post_id", id).Msg("request to update post")

	var updated *model.Post
	err := ps.store.WithinTx(ctx, repository.ReadWrite, func(repos *repository.Repositories) error {
		stored, err := repos.Posts.FindByID(ctx, id)
		if err != nil {
			return err
		}

		updated, err = repos.Posts.Save(ctx, mapper.ApplyPostUpdate(*stored, payload))
		return err
	})
	return updated, err
}

// DeletePost removes the post with its comments and likes.
func (ps *PostService) DeletePost(ctx context.Context, id int64) error {
	log(ctx, ps.server).Debug().Int64("post_id", id).Msg("request to delete post")

	return ps.store.WithinTx(ctx, repository.ReadWrite, func(repos *repository.Repositories) error {
		return repos.Posts.DeleteByID(ctx, id)
	})
}
