package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories is the container handed to services. All four share one DBTX.
type Repositories struct {
	Users    UserRepository
	Posts    PostRepository
	Comments CommentRepository
	Likes    LikeRepository
}

// NewRepositories builds PostgreSQL repositories over db.
func NewRepositories(db DBTX) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(db),
		Posts:    NewPostRepository(db),
		Comments: NewCommentRepository(db),
		Likes:    NewLikeRepository(db),
	}
}

// TxMode selects the access mode of a transaction.
type TxMode int

const (
	ReadOnly TxMode = iota
	ReadWrite
)

// Transactor runs fn inside one transaction. fn returning an error, or
// panicking, rolls the transaction back.
type Transactor interface {
	WithinTx(ctx context.Context, mode TxMode, fn func(repos *Repositories) error) error
}

// Store is the PostgreSQL Transactor.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// WithinTx opens a read committed transaction and passes fn repositories
// bound to it.
func (s *Store) WithinTx(ctx context.Context, mode TxMode, fn func(repos *Repositories) error) error {
	opts := pgx.TxOptions{
		IsoLevel:   pgx.ReadCommitted,
		AccessMode: pgx.ReadWrite,
	}
	if mode == ReadOnly {
		opts.AccessMode = pgx.ReadOnly
	}

	return pgx.BeginTxFunc(ctx, s.pool, opts, func(tx pgx.Tx) error {
		return fn(NewRepositories(tx))
	})
}
