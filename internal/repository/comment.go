package repository

import (
	"context"

	"github.com/deppfellow/blog-backend/internal/model"
)

const commentColumns = `id, text, post_id, user_id`

type commentRepository struct {
	db DBTX
}

func NewCommentRepository(db DBTX) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) FindAll(ctx context.Context) ([]model.Comment, error) {
	return queryAll[model.Comment](ctx, r.db, "find comments",
		`SELECT `+commentColumns+` FROM comment ORDER BY id`)
}

func (r *commentRepository) FindByID(ctx context.Context, id int64) (*model.Comment, error) {
	return queryOne[model.Comment](ctx, r.db, "find comment", "comment", id,
		`SELECT `+commentColumns+` FROM comment WHERE id = $1`, id)
}

func (r *commentRepository) FindByUserID(ctx context.Context, userID int64) ([]model.Comment, error) {
	return queryAll[model.Comment](ctx, r.db, "find comments by user",
		`SELECT `+commentColumns+` FROM comment WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *commentRepository) FindByPostID(ctx context.Context, postID int64) ([]model.Comment, error) {
	return queryAll[model.Comment](ctx, r.db, "find comments by post",
		`SELECT `+commentColumns+` FROM comment WHERE post_id = $1 ORDER BY id`, postID)
}

func (r *commentRepository) FindByUserIDAndPostID(ctx context.Context, userID, postID int64) ([]model.Comment, error) {
	return queryAll[model.Comment](ctx, r.db, "find comments by user and post",
		`SELECT `+commentColumns+` FROM comment WHERE user_id = $1 AND post_id = $2 ORDER BY id`,
		userID, postID)
}

func (r *commentRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return existsByID(ctx, r.db, "check comment", `SELECT EXISTS (SELECT 1 FROM comment WHERE id = $1)`, id)
}

func (r *commentRepository) Save(ctx context.Context, comment model.Comment) (*model.Comment, error) {
	if comment.ID == 0 {
		return queryOne[model.Comment](ctx, r.db, "insert comment", "comment", 0,
			`INSERT INTO comment (text, post_id, user_id) VALUES ($1, $2, $3) RETURNING `+commentColumns,
			comment.Text, comment.PostID, comment.UserID)
	}

	return queryOne[model.Comment](ctx, r.db, "update comment", "comment", comment.ID,
		`UPDATE comment SET text = $2, post_id = $3, user_id = $4 WHERE id = $1 RETURNING `+commentColumns,
		comment.ID, comment.Text, comment.PostID, comment.UserID)
}

func (r *commentRepository) DeleteByID(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "delete comment", `DELETE FROM comment WHERE id = $1`, id)
}
