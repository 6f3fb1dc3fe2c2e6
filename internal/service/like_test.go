package service

import (
	"context"
	"testing"

	"github.com/deppfellow/blog-backend/internal/errs"
	"github.com/deppfellow/blog-backend/internal/lib/job"
	"github.com/deppfellow/blog-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeService_RepeatedLikesAreKept(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.user(t, "alice")
	post, err := env.posts.SavePost(ctx, model.PostCreatePayload{Title: "Hi", Text: "body", UserID: alice.ID})
	require.NoError(t, err)

	comment := env.comment(t, alice, post, "nice")
	assert.Equal(t, alice.ID, comment.UserID)
	assert.Equal(t, post.ID, comment.PostID)

	first := env.like(t, alice, post)
	second := env.like(t, alice, post)
	assert.NotEqual(t, first.ID, second.ID)

	likes, err := env.likes.GetAllLikes(ctx, model.RelationFilter{UserID: ptr(alice.ID), PostID: ptr(post.ID)})
	require.NoError(t, err)
	assert.Equal(t, []model.Like{*first, *second}, likes)
}

func TestLikeService_SaveLikeMissingReferences(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")
	post := env.post(t, alice, "Hi")

	tests := []struct {
		name    string
		payload model.LikeCreatePayload
		entity  string
	}{
		{"missing user", model.LikeCreatePayload{UserID: 99, PostID: post.ID}, "user"},
		{"missing post", model.LikeCreatePayload{UserID: alice.ID, PostID: 99}, "post"},
		{"both missing reports post", model.LikeCreatePayload{UserID: 98, PostID: 99}, "post"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			like, err := env.likes.SaveLike(ctx, tt.payload)
			assert.Nil(t, like)

			var ref *errs.ReferenceError
			require.ErrorAs(t, err, &ref)
			assert.Equal(t, tt.entity, ref.Entity)
		})
	}

	_, _, _, likes := env.store.Counts()
	assert.Zero(t, likes)
}

func TestLikeService_GetAllLikesFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")
	bob := env.user(t, "bob")
	p1 := env.post(t, alice, "p1")
	p2 := env.post(t, alice, "p2")

	l1 := env.like(t, alice, p1)
	l2 := env.like(t, bob, p1)
	l3 := env.like(t, bob, p2)

	tests := []struct {
		name   string
		filter model.RelationFilter
		want   []model.Like
	}{
		{"none", model.RelationFilter{}, []model.Like{*l1, *l2, *l3}},
		{"by user", model.RelationFilter{UserID: ptr(bob.ID)}, []model.Like{*l2, *l3}},
		{"by post", model.RelationFilter{PostID: ptr(p1.ID)}, []model.Like{*l1, *l2}},
		{"by user and post", model.RelationFilter{UserID: ptr(bob.ID), PostID: ptr(p2.ID)}, []model.Like{*l3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := env.likes.GetAllLikes(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLikeService_DeleteLike(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")
	post := env.post(t, alice, "Hi")
	like := env.like(t, alice, post)

	require.NoError(t, env.likes.DeleteLike(ctx, like.ID))

	_, err := env.likes.GetLikeByID(ctx, like.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.NoError(t, env.likes.DeleteLike(ctx, like.ID))
}

func TestLikeService_NotifiesAfterSave(t *testing.T) {
	env := newTestEnv(t)
	alice := env.user(t, "alice")
	post := env.post(t, alice, "Hi")

	like := env.like(t, alice, post)

	require.Len(t, env.notifier.payloads, 1)
	assert.Equal(t, job.EngagementLike, env.notifier.payloads[0].Kind)
	assert.Equal(t, like.ID, env.notifier.payloads[0].EntityID)
}
