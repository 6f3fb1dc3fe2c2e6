package repository

import (
	"context"

	"github.com/deppfellow/blog-backend/internal/model"
)

const postColumns = `id, title, text, user_id`

type postRepository struct {
	db DBTX
}

func NewPostRepository(db DBTX) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) FindAll(ctx context.Context) ([]model.Post, error) {
	return queryAll[model.Post](ctx, r.db, "find posts",
		`SELECT `+postColumns+` FROM post ORDER BY id`)
}

func (r *postRepository) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	return queryOne[model.Post](ctx, r.db, "find post", "post", id,
		`SELECT `+postColumns+` FROM post WHERE id = $1`, id)
}

func (r *postRepository) FindByUserID(ctx context.Context, userID int64) ([]model.Post, error) {
	return queryAll[model.Post](ctx, r.db, "find posts by user",
		`SELECT `+postColumns+` FROM post WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *postRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return existsByID(ctx, r.db, "check post", `SELECT EXISTS (SELECT 1 FROM post WHERE id = $1)`, id)
}

func (r *postRepository) Save(ctx context.Context, post model.Post) (*model.Post, error) {
	if post.ID == 0 {
		return queryOne[model.Post](ctx, r.db, "insert post", "post", 0,
			`INSERT INTO post (title, text, user_id) VALUES ($1, $2, $3) RETURNING `+postColumns,
			post.Title, post.Text, post.UserID)
	}

	return queryOne[model.Post](ctx, r.db, "update post", "post", post.ID,
		`UPDATE post SET title = $2, text = $3, user_id = $4 WHERE id = $1 RETURNING `+postColumns,
		post.ID, post.Title, post.Text, post.UserID)
}

// DeleteByID removes the post with its comments and likes.
func (r *postRepository) DeleteByID(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "delete post", `DELETE FROM post WHERE id = $1`, id)
}
