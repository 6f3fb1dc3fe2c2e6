package service

import (
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/blog-backend/internal/errs"
	"github.com/deppfellow/blog-backend/internal/lib/job"
	"github.com/deppfellow/blog-backend/internal/model"
	"github.com/deppfellow/blog-backend/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_SaveCommentReferences(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")
	post := env.post(t, alice, "Hi")

	saved := env.comment(t, alice, post, "nice")
	assert.Equal(t, alice.ID, saved.UserID)
	assert.Equal(t, post.ID, saved.PostID)
	assert.Equal(t, "nice", saved.Text)

	got, err := env.comments.GetCommentByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestCommentService_SaveCommentMissingReferences(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")
	post := env.post(t, alice, "Hi")

	tests := []struct {
		name    string
		payload model.CommentCreatePayload
		entity  string
	}{
		{"missing user", model.CommentCreatePayload{Text: "x", UserID: 99, PostID: post.ID}, "user"},
		{"missing post", model.CommentCreatePayload{Text: "x", UserID: alice.ID, PostID: 99}, "post"},
		{"both missing reports user", model.CommentCreatePayload{Text: "x", UserID: 98, PostID: 99}, "user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comment, err := env.comments.SaveComment(ctx, tt.payload)
			assert.Nil(t, comment)

			var ref *errs.ReferenceError
			require.ErrorAs(t, err, &ref)
			assert.Equal(t, tt.entity, ref.Entity)
		})
	}

	_, _, comments, _ := env.store.Counts()
	assert.Zero(t, comments)
	assert.Empty(t, env.notifier.payloads)
}

func TestCommentService_GetAllCommentsFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")
	bob := env.user(t, "bob")
	p1 := env.post(t, alice, "p1")
	p2 := env.post(t, bob, "p2")

	c1 := env.comment(t, alice, p1, "a on p1")
	c2 := env.comment(t, bob, p1, "b on p1")
	c3 := env.comment(t, alice, p2, "a on p2")
	c4 := env.comment(t, alice, p1, "a on p1 again")

	tests := []struct {
		name   string
		filter model.RelationFilter
		want   []model.Comment
	}{
		{"none", model.RelationFilter{}, []model.Comment{*c1, *c2, *c3, *c4}},
		{"by user", model.RelationFilter{UserID: ptr(alice.ID)}, []model.Comment{*c1, *c3, *c4}},
		{"by post", model.RelationFilter{PostID: ptr(p1.ID)}, []model.Comment{*c1, *c2, *c4}},
		{"by user and post", model.RelationFilter{UserID: ptr(alice.ID), PostID: ptr(p1.ID)}, []model.Comment{*c1, *c4}},
		{"unknown post", model.RelationFilter{PostID: ptr(999)}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := env.comments.GetAllComments(ctx, tt.filter)
			require.NoError(t, err)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommentService_PairFilterIsSubsetOfPostFilter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")
	bob := env.user(t, "bob")
	post := env.post(t, alice, "Hi")
	env.comment(t, alice, post, "1")
	env.comment(t, bob, post, "2")
	env.comment(t, alice, post, "3")

	byPair, err := env.comments.GetAllComments(ctx, model.RelationFilter{UserID: ptr(bob.ID), PostID: ptr(post.ID)})
	require.NoError(t, err)
	byPost, err := env.comments.GetAllComments(ctx, model.RelationFilter{PostID: ptr(post.ID)})
	require.NoError(t, err)

	assert.Len(t, byPair, 1)
	assert.Subset(t, byPost, byPair)
	for _, c := range byPair {
		assert.Equal(t, bob.ID, c.UserID)
		assert.Equal(t, post.ID, c.PostID)
	}
}

func TestCommentService_UpdateChangesTextOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")
	post := env.post(t, alice, "Hi")
	comment := env.comment(t, alice, post, "before")

	updated, err := env.comments.UpdateComment(ctx, model.CommentUpdatePayload{Text: "after"}, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, &model.Comment{ID: comment.ID, Text: "after", PostID: post.ID, UserID: alice.ID}, updated)

	_, err = env.comments.UpdateComment(ctx, model.CommentUpdatePayload{Text: "x"}, 404)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestCommentService_DeleteComment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")
	post := env.post(t, alice, "Hi")
	comment := env.comment(t, alice, post, "bye")

	require.NoError(t, env.comments.DeleteComment(ctx, comment.ID))

	_, err := env.comments.GetCommentByID(ctx, comment.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.NoError(t, env.comments.DeleteComment(ctx, comment.ID))
}

func TestCommentService_NotifiesAfterSave(t *testing.T) {
	env := newTestEnv(t)
	alice := env.user(t, "alice")
	bob := env.user(t, "bob")
	post := env.post(t, alice, "Hi")

	comment := env.comment(t, bob, post, "hey")

	require.Len(t, env.notifier.payloads, 1)
	assert.Equal(t, job.PostEngagementPayload{
		Kind:     job.EngagementComment,
		PostID:   post.ID,
		UserID:   bob.ID,
		EntityID: comment.ID,
	}, env.notifier.payloads[0])
}

func TestCommentService_NotifierFailureDoesNotFailSave(t *testing.T) {
	env := newTestEnv(t)
	env.notifier.err = errors.New("redis: connection refused")
	alice := env.user(t, "alice")
	post := env.post(t, alice, "Hi")

	comment, err := env.comments.SaveComment(context.Background(), model.CommentCreatePayload{
		Text:   "still saved",
		UserID: alice.ID,
		PostID: post.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, comment.ID)
	assert.Len(t, env.notifier.payloads, 1)
}

func TestCommentService_WithoutNotifier(t *testing.T) {
	env := newTestEnv(t)
	logger := zerolog.Nop()
	comments := NewCommentService(&server.Server{Logger: &logger}, env.store, nil)
	alice := env.user(t, "alice")
	post := env.post(t, alice, "Hi")

	_, err := comments.SaveComment(context.Background(), model.CommentCreatePayload{
		Text:   "quiet",
		UserID: alice.ID,
		PostID: post.ID,
	})
	require.NoError(t, err)
}

func TestCommentService_StoreFailureRollsBack(t *testing.T) {
	env := newTestEnv(t)
	alice := env.user(t, "alice")
	post := env.post(t, alice, "Hi")
	env.store.FailOn("insert comment", errStore)

	comment, err := env.comments.SaveComment(context.Background(), model.CommentCreatePayload{
		Text:   "lost",
		UserID: alice.ID,
		PostID: post.ID,
	})
	assert.Nil(t, comment)
	assert.ErrorIs(t, err, errStore)
	assert.NotErrorIs(t, err, errs.ErrReferenceMissing)

	_, _, comments, _ := env.store.Counts()
	assert.Zero(t, comments)
	assert.Empty(t, env.notifier.payloads)
}
