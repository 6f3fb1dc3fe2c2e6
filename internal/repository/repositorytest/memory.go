// Package repositorytest provides an in-memory repository.Transactor for tests.
//
// It mirrors the PostgreSQL schema closely enough for service tests:
// ids come from per-table sequences, foreign keys are enforced on write,
// deletes cascade, and a failed WithinTx leaves no trace.
package repositorytest

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/deppfellow/blog-backend/internal/errs"
	"github.com/deppfellow/blog-backend/internal/model"
	"github.com/deppfellow/blog-backend/internal/repository"
	"github.com/deppfellow/blog-backend/internal/sqlerr"
)

type state struct {
	users    map[int64]model.User
	posts    map[int64]model.Post
	comments map[int64]model.Comment
	likes    map[int64]model.Like

	nextUser, nextPost, nextComment, nextLike int64
}

func (s *state) clone() *state {
	c := *s
	c.users = cloneMap(s.users)
	c.posts = cloneMap(s.posts)
	c.comments = cloneMap(s.comments)
	c.likes = cloneMap(s.likes)
	return &c
}

func cloneMap[T any](m map[int64]T) map[int64]T {
	out := make(map[int64]T, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Store is an in-memory Transactor. Transactions are serialized.
type Store struct {
	mu       sync.Mutex
	st       *state
	failures map[string]error
	txCount  int
}

var _ repository.Transactor = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		st: &state{
			users:    map[int64]model.User{},
			posts:    map[int64]model.Post{},
			comments: map[int64]model.Comment{},
			likes:    map[int64]model.Like{},
		},
		failures: map[string]error{},
	}
}

// FailOn makes every call of op return err, e.g. FailOn("insert comment", err).
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

// Transactions reports how many WithinTx calls ran.
func (s *Store) Transactions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.txCount
}

func (s *Store) WithinTx(ctx context.Context, mode repository.TxMode, fn func(repos *repository.Repositories) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.txCount++
	if err := ctx.Err(); err != nil {
		return err
	}

	snapshot := s.st.clone()
	tx := &tx{store: s, readOnly: mode == repository.ReadOnly}
	repos := &repository.Repositories{
		Users:    &userRepo{tx},
		Posts:    &postRepo{tx},
		Comments: &commentRepo{tx},
		Likes:    &likeRepo{tx},
	}

	if err := fn(repos); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

type tx struct {
	store    *Store
	readOnly bool
}

func (t *tx) st() *state {
	return t.store.st
}

func (t *tx) check(op string) error {
	if err := t.store.failures[op]; err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (t *tx) write(op string) error {
	if err := t.check(op); err != nil {
		return err
	}
	if t.readOnly {
		return fmt.Errorf("%s: %w", op, &sqlerr.Error{
			Code:         sqlerr.ReadOnlyTransaction,
			DatabaseCode: "25006",
			Message:      "cannot execute " + op + " in a read-only transaction",
		})
	}
	return nil
}

func fkViolation(op, table, column string) error {
	return fmt.Errorf("%s: %w", op, &sqlerr.Error{
		Code:           sqlerr.ForeignKeyViolation,
		DatabaseCode:   "23503",
		Message:        fmt.Sprintf("insert or update on table %q violates foreign key constraint", table),
		TableName:      table,
		ColumnName:     column,
		ConstraintName: table + "_" + column + "_fkey",
	})
}

func sortedValues[T any](m map[int64]T, keep func(T) bool) []T {
	ids := make([]int64, 0, len(m))
	for id, v := range m {
		if keep == nil || keep(v) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, m[id])
	}
	return out
}

func (t *tx) cascadeUser(id int64) {
	st := t.st()
	delete(st.users, id)
	for pid, p := range st.posts {
		if p.UserID == id {
			t.cascadePost(pid)
		}
	}
	for cid, c := range st.comments {
		if c.UserID == id {
			delete(st.comments, cid)
		}
	}
	for lid, l := range st.likes {
		if l.UserID == id {
			delete(st.likes, lid)
		}
	}
}

func (t *tx) cascadePost(id int64) {
	st := t.st()
	delete(st.posts, id)
	for cid, c := range st.comments {
		if c.PostID == id {
			delete(st.comments, cid)
		}
	}
	for lid, l := range st.likes {
		if l.PostID == id {
			delete(st.likes, lid)
		}
	}
}

type userRepo struct{ *tx }

func (r *userRepo) FindAll(context.Context) ([]model.User, error) {
	if err := r.check("find users"); err != nil {
		return nil, err
	}
	return sortedValues(r.st().users, nil), nil
}

func (r *userRepo) FindByID(_ context.Context, id int64) (*model.User, error) {
	if err := r.check("find user"); err != nil {
		return nil, err
	}
	u, ok := r.st().users[id]
	if !ok {
		return nil, errs.NewNotFound("user", id)
	}
	return &u, nil
}

func (r *userRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := r.st().users[id]
	return ok, nil
}

func (r *userRepo) Save(_ context.Context, user model.User) (*model.User, error) {
	op := "insert user"
	if user.ID != 0 {
		op = "update user"
	}
	if err := r.write(op); err != nil {
		return nil, err
	}

	st := r.st()
	if user.ID == 0 {
		st.nextUser++
		user.ID = st.nextUser
	} else if _, ok := st.users[user.ID]; !ok {
		return nil, errs.NewNotFound("user", user.ID)
	}
	st.users[user.ID] = user
	return &user, nil
}

func (r *userRepo) DeleteByID(_ context.Context, id int64) error {
	if err := r.write("delete user"); err != nil {
		return err
	}
	r.cascadeUser(id)
	return nil
}

type postRepo struct{ *tx }

func (r *postRepo) FindAll(context.Context) ([]model.Post, error) {
	if err := r.check("find posts"); err != nil {
		return nil, err
	}
	return sortedValues(r.st().posts, nil), nil
}

func (r *postRepo) FindByID(_ context.Context, id int64) (*model.Post, error) {
	if err := r.check("find post"); err != nil {
		return nil, err
	}
	p, ok := r.st().posts[id]
	if !ok {
		return nil, errs.NewNotFound("post", id)
	}
	return &p, nil
}

func (r *postRepo) FindByUserID(_ context.Context, userID int64) ([]model.Post, error) {
	if err := r.check("find posts by user"); err != nil {
		return nil, err
	}
	return sortedValues(r.st().posts, func(p model.Post) bool { return p.UserID == userID }), nil
}

func (r *postRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := r.st().posts[id]
	return ok, nil
}

func (r *postRepo) Save(_ context.Context, post model.Post) (*model.Post, error) {
	op := "insert post"
	if post.ID != 0 {
		op = "update post"
	}
	if err := r.write(op); err != nil {
		return nil, err
	}

	st := r.st()
	if _, ok := st.users[post.UserID]; !ok {
		return nil, fkViolation(op, "post", "user_id")
	}
	if post.ID == 0 {
		st.nextPost++
		post.ID = st.nextPost
	} else if _, ok := st.posts[post.ID]; !ok {
		return nil, errs.NewNotFound("post", post.ID)
	}
	st.posts[post.ID] = post
	return &post, nil
}

func (r *postRepo) DeleteByID(_ context.Context, id int64) error {
	if err := r.write("delete post"); err != nil {
		return err
	}
	r.cascadePost(id)
	return nil
}

type commentRepo struct{ *tx }

func (r *commentRepo) FindAll(context.Context) ([]model.Comment, error) {
	if err := r.check("find comments"); err != nil {
		return nil, err
	}
	return sortedValues(r.st().comments, nil), nil
}

func (r *commentRepo) FindByID(_ context.Context, id int64) (*model.Comment, error) {
	if err := r.check("find comment"); err != nil {
		return nil, err
	}
	c, ok := r.st().comments[id]
	if !ok {
		return nil, errs.NewNotFound("comment", id)
	}
	return &c, nil
}

func (r *commentRepo) FindByUserID(_ context.Context, userID int64) ([]model.Comment, error) {
	if err := r.check("find comments by user"); err != nil {
		return nil, err
	}
	return sortedValues(r.st().comments, func(c model.Comment) bool { return c.UserID == userID }), nil
}

func (r *commentRepo) FindByPostID(_ context.Context, postID int64) ([]model.Comment, error) {
	if err := r.check("find comments by post"); err != nil {
		return nil, err
	}
	return sortedValues(r.st().comments, func(c model.Comment) bool { return c.PostID == postID }), nil
}

func (r *commentRepo) FindByUserIDAndPostID(_ context.Context, userID, postID int64) ([]model.Comment, error) {
	if err := r.check("find comments by user and post"); err != nil {
		return nil, err
	}
	return sortedValues(r.st().comments, func(c model.Comment) bool {
		return c.UserID == userID && c.PostID == postID
	}), nil
}

func (r *commentRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := r.st().comments[id]
	return ok, nil
}

func (r *commentRepo) Save(_ context.Context, comment model.Comment) (*model.Comment, error) {
	op := "insert comment"
	if comment.ID != 0 {
		op = "update comment"
	}
	if err := r.write(op); err != nil {
		return nil, err
	}

	st := r.st()
	if _, ok := st.posts[comment.PostID]; !ok {
		return nil, fkViolation(op, "comment", "post_id")
	}
	if _, ok := st.users[comment.UserID]; !ok {
		return nil, fkViolation(op, "comment", "user_id")
	}
	if comment.ID == 0 {
		st.nextComment++
		comment.ID = st.nextComment
	} else if _, ok := st.comments[comment.ID]; !ok {
		return nil, errs.NewNotFound("comment", comment.ID)
	}
	st.comments[comment.ID] = comment
	return &comment, nil
}

func (r *commentRepo) DeleteByID(_ context.Context, id int64) error {
	if err := r.write("delete comment"); err != nil {
		return err
	}
	delete(r.st().comments, id)
	return nil
}

type likeRepo struct{ *tx }

func (r *likeRepo) FindAll(context.Context) ([]model.Like, error) {
	if err := r.check("find likes"); err != nil {
		return nil, err
	}
	return sortedValues(r.st().likes, nil), nil
}

func (r *likeRepo) FindByID(_ context.Context, id int64) (*model.Like, error) {
	if err := r.check("find like"); err != nil {
		return nil, err
	}
	l, ok := r.st().likes[id]
	if !ok {
		return nil, errs.NewNotFound("like", id)
	}
	return &l, nil
}

func (r *likeRepo) FindByUserID(_ context.Context, userID int64) ([]model.Like, error) {
	if err := r.check("find likes by user"); err != nil {
		return nil, err
	}
	return sortedValues(r.st().likes, func(l model.Like) bool { return l.UserID == userID }), nil
}

func (r *likeRepo) FindByPostID(_ context.Context, postID int64) ([]model.Like, error) {
	if err := r.check("find likes by post"); err != nil {
		return nil, err
	}
	return sortedValues(r.st().likes, func(l model.Like) bool { return l.PostID == postID }), nil
}

func (r *likeRepo) FindByUserIDAndPostID(_ context.Context, userID, postID int64) ([]model.Like, error) {
	if err := r.check("find likes by user and post"); err != nil {
		return nil, err
	}
	return sortedValues(r.st().likes, func(l model.Like) bool {
		return l.UserID == userID && l.PostID == postID
	}), nil
}

func (r *likeRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := r.st().likes[id]
	return ok, nil
}

func (r *likeRepo) Save(_ context.Context, like model.Like) (*model.Like, error) {
	op := "insert like"
	if like.ID != 0 {
		op = "update like"
	}
	if err := r.write(op); err != nil {
		return nil, err
	}

	st := r.st()
	if _, ok := st.posts[like.PostID]; !ok {
		return nil, fkViolation(op, "post_like", "post_id")
	}
	if _, ok := st.users[like.UserID]; !ok {
		return nil, fkViolation(op, "post_like", "user_id")
	}
	if like.ID == 0 {
		st.nextLike++
		like.ID = st.nextLike
	} else if _, ok := st.likes[like.ID]; !ok {
		return nil, errs.NewNotFound("like", like.ID)
	}
	st.likes[like.ID] = like
	return &like, nil
}

func (r *likeRepo) DeleteByID(_ context.Context, id int64) error {
	if err := r.write("delete like"); err != nil {
		return err
	}
	delete(r.st().likes, id)
	return nil
}

// Counts returns the number of stored users, posts, comments and likes.
func (s *Store) Counts() (users, posts, comments, likes int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.users), len(s.st.posts), len(s.st.comments), len(s.st.likes)
}
