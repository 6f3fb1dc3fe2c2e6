package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/deppfellow/blog-backend/internal/model"
	"github.com/deppfellow/blog-backend/internal/repository"
	"github.com/deppfellow/blog-backend/internal/repository/repositorytest"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostEngagementTask(t *testing.T) {
	task, err := NewPostEngagementTask(PostEngagementPayload{
		Kind:     EngagementLike,
		PostID:   2,
		UserID:   1,
		EntityID: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, TaskPostEngagement, task.Type())

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, "like", decoded["kind"])
	assert.EqualValues(t, 2, decoded["post_id"])
	assert.EqualValues(t, 5, decoded["entity_id"])

	_, err = NewPostEngagementTask(PostEngagementPayload{Kind: "share", PostID: 2})
	assert.Error(t, err)
}

func TestEnqueuePostEngagement_NilService(t *testing.T) {
	var j *JobService
	err := j.EnqueuePostEngagement(context.Background(), PostEngagementPayload{Kind: EngagementComment})
	assert.ErrorIs(t, err, ErrNotStarted)
}

func newWorker(t *testing.T) (*JobService, *repositorytest.Store, model.Post) {
	t.Helper()

	store := repositorytest.NewStore()
	var post *model.Post
	err := store.WithinTx(context.Background(), repository.ReadWrite, func(repos *repository.Repositories) error {
		owner, err := repos.Users.Save(context.Background(), model.User{Username: "owner", Password: "pw"})
		if err != nil {
			return err
		}
		post, err = repos.Posts.Save(context.Background(), model.Post{Title: "t", Text: "x", UserID: owner.ID})
		return err
	})
	require.NoError(t, err)

	logger := zerolog.Nop()
	j := &JobService{logger: &logger}
	j.InitHandlers(store)
	return j, store, *post
}

func engagementTask(t *testing.T, p PostEngagementPayload) *asynq.Task {
	t.Helper()
	task, err := NewPostEngagementTask(p)
	require.NoError(t, err)
	return task
}

func TestHandlePostEngagementTask(t *testing.T) {
	j, _, post := newWorker(t)

	err := j.handlePostEngagementTask(context.Background(), engagementTask(t, PostEngagementPayload{
		Kind:     EngagementComment,
		PostID:   post.ID,
		UserID:   post.UserID + 1,
		EntityID: 1,
	}))
	assert.NoError(t, err)
}

func TestHandlePostEngagementTask_DeletedPostSkipsRetry(t *testing.T) {
	j, _, post := newWorker(t)

	err := j.handlePostEngagementTask(context.Background(), engagementTask(t, PostEngagementPayload{
		Kind:   EngagementLike,
		PostID: post.ID + 100,
		UserID: 1,
	}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}

func TestHandlePostEngagementTask_BadPayload(t *testing.T) {
	j, _, _ := newWorker(t)

	err := j.handlePostEngagementTask(context.Background(), asynq.NewTask(TaskPostEngagement, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}
