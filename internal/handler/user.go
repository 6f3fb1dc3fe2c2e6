package handler

import (
	"github.com/deppfellow/blog-backend/internal/mapper"
	"github.com/deppfellow/blog-backend/internal/model"
	"github.com/deppfellow/blog-backend/internal/server"
	"github.com/deppfellow/blog-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{Handler: NewHandler(s), users: users}
}

func (h *UserHandler) ListUsers(c echo.Context, _ *EmptyRequest) ([]model.User, error) {
	return h.users.GetAllUsers(c.Request().Context())
}

func (h *UserHandler) GetUser(c echo.Context, req *IDRequest) (*model.User, error) {
	return h.users.GetUserByID(c.Request().Context(), req.ID)
}

func (h *UserHandler) CreateUser(c echo.Context, req *CreateUserRequest) (*model.User, error) {
	return h.users.SaveUser(c.Request().Context(), mapper.ToUser(req.UserPayload))
}

func (h *UserHandler) UpdateUser(c echo.Context, req *UpdateUserRequest) (*model.User, error) {
	return h.users.UpdateUser(c.Request().Context(), req.UserPayload, req.ID)
}

func (h *UserHandler) DeleteUser(c echo.Context, req *IDRequest) error {
	return h.users.DeleteUser(c.Request().Context(), req.ID)
}
