package handler

import (
	"strconv"

	"github.com/deppfellow/blog-backend/internal/errs"
	"github.com/deppfellow/blog-backend/internal/model"
	"github.com/deppfellow/blog-backend/internal/validation"
)

// EmptyRequest is used by endpoints without parameters.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error {
	return nil
}

// IDRequest addresses one entity by the :id path parameter.
type IDRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
}

func (r *IDRequest) Validate() error {
	return validation.Struct(r)
}

type CreateUserRequest struct {
	model.UserPayload
}

func (r *CreateUserRequest) Validate() error {
	return validation.Struct(r)
}

type UpdateUserRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
	model.UserPayload
}

func (r *UpdateUserRequest) Validate() error {
	return validation.Struct(r)
}

// ListPostsRequest takes userId as a string so that an absent parameter
// stays distinguishable from zero.
type ListPostsRequest struct {
	UserID string `query:"userId" validate:"omitempty,number"`
}

func (r *ListPostsRequest) Validate() error {
	return validation.Struct(r)
}

type CreatePostRequest struct {
	model.PostCreatePayload
}

func (r *CreatePostRequest) Validate() error {
	return validation.Struct(r)
}

type UpdatePostRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
	model.PostUpdatePayload
}

func (r *UpdatePostRequest) Validate() error {
	return validation.Struct(r)
}

// ListRelationRequest filters comments or likes by userId and/or postId.
type ListRelationRequest struct {
	UserID string `query:"userId" validate:"omitempty,number"`
	PostID string `query:"postId" validate:"omitempty,number"`
}

func (r *ListRelationRequest) Validate() error {
	return validation.Struct(r)
}

func (r *ListRelationRequest) Filter() (model.RelationFilter, error) {
	userID, err := optionalID("userId", r.UserID)
	if err != nil {
		return model.RelationFilter{}, err
	}
	postID, err := optionalID("postId", r.PostID)
	if err != nil {
		return model.RelationFilter{}, err
	}
	return model.RelationFilter{UserID: userID, PostID: postID}, nil
}

type CreateCommentRequest struct {
	model.CommentCreatePayload
}

func (r *CreateCommentRequest) Validate() error {
	return validation.Struct(r)
}

type UpdateCommentRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
	model.CommentUpdatePayload
}

func (r *UpdateCommentRequest) Validate() error {
	return validation.Struct(r)
}

type CreateLikeRequest struct {
	model.LikeCreatePayload
}

func (r *CreateLikeRequest) Validate() error {
	return validation.Struct(r)
}

// optionalID parses an optional numeric query parameter.
func optionalID(field, raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errs.NewBadRequestError("Validation failed", true, nil, []errs.FieldError{
			{Field: field, Error: "must be a valid id"},
		})
	}
	return &id, nil
}
