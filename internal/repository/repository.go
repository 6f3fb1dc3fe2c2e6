// Package repository handles all interactions with the database.
//
// Every repository works against a DBTX, which is either the pool or the
// transaction opened by Store.WithinTx. Lookups of a missing id return
// *errs.NotFoundError; PostgreSQL failures come back as *sqlerr.Error
// wrapped with the failing operation.
package repository

import (
	"context"
	"errors"

	"github.com/deppfellow/blog-backend/internal/errs"
	"github.com/deppfellow/blog-backend/internal/model"
	"github.com/deppfellow/blog-backend/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgx shared by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type UserRepository interface {
	FindAll(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, user model.User) (*model.User, error)
	DeleteByID(ctx context.Context, id int64) error
}

type PostRepository interface {
	FindAll(ctx context.Context) ([]model.Post, error)
	FindByID(ctx context.Context, id int64) (*model.Post, error)
	FindByUserID(ctx context.Context, userID int64) ([]model.Post, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, post model.Post) (*model.Post, error)
	DeleteByID(ctx context.Context, id int64) error
}

type CommentRepository interface {
	FindAll(ctx context.Context) ([]model.Comment, error)
	FindByID(ctx context.Context, id int64) (*model.Comment, error)
	FindByUserID(ctx context.Context, userID int64) ([]model.Comment, error)
	FindByPostID(ctx context.Context, postID int64) ([]model.Comment, error)
	FindByUserIDAndPostID(ctx context.Context, userID, postID int64) ([]model.Comment, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, comment model.Comment) (*model.Comment, error)
	DeleteByID(ctx context.Context, id int64) error
}

type LikeRepository interface {
	FindAll(ctx context.Context) ([]model.Like, error)
	FindByID(ctx context.Context, id int64) (*model.Like, error)
	FindByUserID(ctx context.Context, userID int64) ([]model.Like, error)
	FindByPostID(ctx context.Context, postID int64) ([]model.Like, error)
	FindByUserIDAndPostID(ctx context.Context, userID, postID int64) ([]model.Like, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, like model.Like) (*model.Like, error)
	DeleteByID(ctx context.Context, id int64) error
}

// queryAll runs sql and scans every row into T by db tag.
func queryAll[T any](ctx context.Context, db DBTX, op, sql string, args ...any) ([]T, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, sqlerr.Wrap(err, op)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, sqlerr.Wrap(err, op)
	}
	return items, nil
}

// queryOne runs sql expecting exactly one row. No row means the entity
// with the given id does not exist.
func queryOne[T any](ctx context.Context, db DBTX, op, entity string, id int64, sql string, args ...any) (*T, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, sqlerr.Wrap(err, op)
	}

	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFound(entity, id)
		}
		return nil, sqlerr.Wrap(err, op)
	}
	return item, nil
}

func existsByID(ctx context.Context, db DBTX, op, sql string, id int64) (bool, error) {
	var exists bool
	if err := db.QueryRow(ctx, sql, id).Scan(&exists); err != nil {
		return false, sqlerr.Wrap(err, op)
	}
	return exists, nil
}

func deleteByID(ctx context.Context, db DBTX, op, sql string, id int64) error {
	if _, err := db.Exec(ctx, sql, id); err != nil {
		return sqlerr.Wrap(err, op)
	}
	return nil
}
