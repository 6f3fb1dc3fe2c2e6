package service

import (
	"context"

	"github.com/deppfellow/blog-backend/internal/mapper"
	"github.com/deppfellow/blog-backend/internal/model"
	"github.com/deppfellow/blog-backend/internal/repository"
	"github.com/deppfellow/blog-backend/internal/server"
)

type UserService struct {
	server *server.Server
	store  repository.Transactor
}

func NewUserService(s *server.Server, store repository.Transactor) *UserService {
	return &UserService{server: s, store: store}
}

func (us *UserService) GetAllUsers(ctx context.Context) ([]model.User, error) {
	log(ctx, us.server).Debug().Msg("request to get all users")

	var users []model.User
	err := us.store.WithinTx(ctx, repository.ReadOnly, func(repos *repository.Repositories) error {
		var err error
		users, err = repos.Users.FindAll(ctx)
		return err
	})
	return users, err
}

func (us *UserService) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	log(ctx, us.server).Debug().Int64("user_id", id).Msg("request to get user")

	var user *model.User
	err := us.store.WithinTx(ctx, repository.ReadOnly, func(repos *repository.Repositories) error {
		var err error
		user, err = repos.Users.FindByID(ctx, id)
		return err
	})
	return user, err
}

// SaveUser persists user as given. It is the only way users are created.
func (us *UserService) SaveUser(ctx context.Context, user model.User) (*model.User, error) {
	log(ctx, us.server).Debug().Str("username", user.Username).Msg("request to save user")

	var saved *model.User
	err := us.store.WithinTx(ctx, repository.ReadWrite, func(repos *repository.Repositories) error {
		var err error
		saved, err = repos.Users.Save(ctx, user)
		return err
	})
	return saved, err
}

// UpdateUser replaces username and password of the stored user.
func (us *UserService) UpdateUser(ctx context.Context, payload model.UserPayload, id int64) (*model.User, error) {
	log(ctx, us.server).Debug().Int64("user_id", id).Msg("request to update user")

	var updated *model.User
	err := us.store.WithinTx(ctx, repository.ReadWrite, func(repos *repository.Repositories) error {
		stored, err := repos.Users.FindByID(ctx, id)
		if err != nil {
			return err
		}

		updated, err = repos.Users.Save(ctx, mapper.ApplyUserUpdate(*stored, payload))
		return err
	})
	return updated, err
}

// DeleteUser removes the user and everything they own. Deleting an
// unknown id succeeds.
func (us *UserService) DeleteUser(ctx context.Context, id int64) error {
	log(ctx, us.server).Debug().Int64("user_id", id).Msg("request to delete user")

	return us.store.WithinTx(ctx, repository.ReadWrite, func(repos *repository.Repositories) error {
		return repos.Users.DeleteByID(ctx, id)
	})
}
