package repository

import (
	"context"

	"github.com/deppfellow/blog-backend/internal/model"
)

const likeColumns = `id, post_id, user_id`

type likeRepository struct {
	db DBTX
}

func NewLikeRepository(db DBTX) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) FindAll(ctx context.Context) ([]model.Like, error) {
	return queryAll[model.Like](ctx, r.db, "find likes",
		`SELECT `+likeColumns+` FROM post_like ORDER BY id`)
}

func (r *likeRepository) FindByID(ctx context.Context, id int64) (*model.Like, error) {
	return queryOne[model.Like](ctx, r.db, "find like", "like", id,
		`SELECT `+likeColumns+` FROM post_like WHERE id = $1`, id)
}

func (r *likeRepository) FindByUserID(ctx context.Context, userID int64) ([]model.Like, error) {
	return queryAll[model.Like](ctx, r.db, "find likes by user",
		`SELECT `+likeColumns+` FROM post_like WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *likeRepository) FindByPostID(ctx context.Context, postID int64) ([]model.Like, error) {
	return queryAll[model.Like](ctx, r.db, "find likes by post",
		`SELECT `+likeColumns+` FROM post_like WHERE post_id = $1 ORDER BY id`, postID)
}

func (r *likeRepository) FindByUserIDAndPostID(ctx context.Context, userID, postID int64) ([]model.Like, error) {
	return queryAll[model.Like](ctx, r.db, "find likes by user and post",
		`SELECT `+likeColumns+` FROM post_like WHERE user_id = $1 AND post_id = $2 ORDER BY id`,
		userID, postID)
}

func (r *likeRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return existsByID(ctx, r.db, "check like", `SELECT EXISTS (SELECT 1 FROM post_like WHERE id = $1)`, id)
}

// Save never deduplicates: liking the same post twice stores two rows.
func (r *likeRepository) Save(ctx context.Context, like model.Like) (*model.Like, error) {
	if like.ID == 0 {
		return queryOne[model.Like](ctx, r.db, "insert like", "like", 0,
			`INSERT INTO post_like (post_id, user_id) VALUES ($1, $2) RETURNING `+likeColumns,
			like.PostID, like.UserID)
	}

	return queryOne[model.Like](ctx, r.db, "update like", "like", like.ID,
		`UPDATE post_like SET post_id = $2, user_id = $3 WHERE id = $1 RETURNING `+likeColumns,
		like.ID, like.PostID, like.UserID)
}

func (r *likeRepository) DeleteByID(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "delete like", `DELETE FROM post_like WHERE id = $1`, id)
}
