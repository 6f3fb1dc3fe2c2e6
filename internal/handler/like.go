package handler

import (
	"github.com/deppfellow/blog-backend/internal/model"
	"github.com/deppfellow/blog-backend/internal/server"
	"github.com/deppfellow/blog-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type LikeHandler struct {
	Handler
	likes *service.LikeService
}

func NewLikeHandler(s *server.Server, likes *service.LikeService) *LikeHandler {
	return &LikeHandler{Handler: NewHandler(s), likes: likes}
}

func (h *LikeHandler) ListLikes(c echo.Context, req *ListRelationRequest) ([]model.Like, error) {
	filter, err := req.Filter()
	if err != nil {
		return nil, err
	}
	return h.likes.GetAllLikes(c.Request().Context(), filter)
}

func (h *LikeHandler) GetLike(c echo.Context, req *IDRequest) (*model.Like, error) {
	return h.likes.GetLikeByID(c.Request().Context(), req.ID)
}

func (h *LikeHandler) CreateLike(c echo.Context, req *CreateLikeRequest) (*model.Like, error) {
	return h.likes.SaveLike(c.Request().Context(), req.LikeCreatePayload)
}

func (h *LikeHandler) DeleteLike(c echo.Context, req *IDRequest) error {
	return h.likes.DeleteLike(c.Request().Context(), req.ID)
}
