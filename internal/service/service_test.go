package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/deppfellow/blog-backend/internal/lib/job"
	"github.com/deppfellow/blog-backend/internal/model"
	"github.com/deppfellow/blog-backend/internal/repository/repositorytest"
	"github.com/deppfellow/blog-backend/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	mu       sync.Mutex
	payloads []job.PostEngagementPayload
	err      error
}

func (f *fakeNotifier) EnqueuePostEngagement(_ context.Context, p job.PostEngagementPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payloads = append(f.payloads, p)
	return f.err
}

type testEnv struct {
	store    *repositorytest.Store
	notifier *fakeNotifier
	users    *UserService
	posts    *PostService
	comments *CommentService
	likes    *LikeService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := zerolog.Nop()
	s := &server.Server{Logger: &logger}
	store := repositorytest.NewStore()
	notifier := &fakeNotifier{}

	return &testEnv{
		store:    store,
		notifier: notifier,
		users:    NewUserService(s, store),
		posts:    NewPostService(s, store),
		comments: NewCommentService(s, store, notifier),
		likes:    NewLikeService(s, store, notifier),
	}
}

func (e *testEnv) user(t *testing.T, name string) *model.User {
	t.Helper()
	u, err := e.users.SaveUser(context.Background(), model.User{Username: name, Password: "secret"})
	require.NoError(t, err)
	return u
}

func (e *testEnv) post(t *testing.T, owner *model.User, title string) *model.Post {
	t.Helper()
	p, err := e.posts.SavePost(context.Background(), model.PostCreatePayload{
		Title:  title,
		Text:   "body",
		UserID: owner.ID,
	})
	require.NoError(t, err)
	return p
}

func (e *testEnv) comment(t *testing.T, u *model.User, p *model.Post, text string) *model.Comment {
	t.Helper()
	c, err := e.comments.SaveComment(context.Background(), model.CommentCreatePayload{
		Text:   text,
		UserID: u.ID,
		PostID: p.ID,
	})
	require.NoError(t, err)
	return c
}

func (e *testEnv) like(t *testing.T, u *model.User, p *model.Post) *model.Like {
	t.Helper()
	l, err := e.likes.SaveLike(context.Background(), model.LikeCreatePayload{UserID: u.ID, PostID: p.ID})
	require.NoError(t, err)
	return l
}

func ptr(v int64) *int64 {
	return &v
}

var errStore = errors.New("connection refused")
