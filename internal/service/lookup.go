package service

import (
	"context"
	"errors"

	"github.com/deppfellow/blog-backend/internal/errs"
	"github.com/deppfellow/blog-backend/internal/model"
)

// UserLookup is the one capability reference resolution needs from users.
type UserLookup interface {
	FindByID(ctx context.Context, id int64) (*model.User, error)
}

// PostLookup is the one capability reference resolution needs from posts.
type PostLookup interface {
	FindByID(ctx context.Context, id int64) (*model.Post, error)
}

// resolveUser loads the user a write refers to. An absent user becomes
// *errs.ReferenceError; any other failure is returned unchanged.
func resolveUser(ctx context.Context, users UserLookup, id int64) (*model.User, error) {
	user, err := users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.NewReferenceMissing("user", id)
		}
		return nil, err
	}
	return user, nil
}

func resolvePost(ctx context.Context, posts PostLookup, id int64) (*model.Post, error) {
	post, err := posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.NewReferenceMissing("post", id)
		}
		return nil, err
	}
	return post, nil
}
