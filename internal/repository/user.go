package repository

import (
	"context"

	"github.com/deppfellow/blog-backend/internal/model"
)

const userColumns = `id, username, password`

type userRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindAll(ctx context.Context) ([]model.User, error) {
	return queryAll[model.User](ctx, r.db, "find users",
		`SELECT `+userColumns+` FROM "user" ORDER BY id`)
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	return queryOne[model.User](ctx, r.db, "find user", "user", id,
		`SELECT `+userColumns+` FROM "user" WHERE id = $1`, id)
}

func (r *userRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return existsByID(ctx, r.db, "check user", `SELECT EXISTS (SELECT 1 FROM "user" WHERE id = $1)`, id)
}

// Save inserts user when it has no id yet, otherwise overwrites its row.
func (r *userRepository) Save(ctx context.Context, user model.User) (*model.User, error) {
	if user.ID == 0 {
		return queryOne[model.User](ctx, r.db, "insert user", "user", 0,
			`INSERT INTO "user" (username, password) VALUES ($1, $2) RETURNING `+userColumns,
			user.Username, user.Password)
	}

	return queryOne[model.User](ctx, r.db, "update user", "user", user.ID,
		`UPDATE "user" SET username = $2, password = $3 WHERE id = $1 RETURNING `+userColumns,
		user.ID, user.Username, user.Password)
}

// DeleteByID removes the user together with their posts, comments and
// likes (ON DELETE CASCADE). A missing id is not an error.
func (r *userRepository) DeleteByID(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "delete user", `DELETE FROM "user" WHERE id = $1`, id)
}
