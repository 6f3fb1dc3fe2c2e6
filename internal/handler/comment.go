package handler

import (
	"github.com/deppfellow/blog-backend/internal/model"
	"github.com/deppfellow/blog-backend/internal/server"
	"github.com/deppfellow/blog-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type CommentHandler struct {
	Handler
	comments *service.CommentService
}

func NewCommentHandler(s *server.Server, comments *service.CommentService) *CommentHandler {
	return &CommentHandler{Handler: NewHandler(s), comments: comments}
}

func (h *CommentHandler) ListComments(c echo.Context, req *ListRelationRequest) ([]model.Comment, error) {
	filter, err := req.Filter()
	if err != nil {
		return nil, err
	}
	return h.comments.GetAllComments(c.Request().Context(), filter)
}

func (h *CommentHandler) GetComment(c echo.Context, req *IDRequest) (*model.Comment, error) {
	return h.comments.GetCommentByID(c.Request().Context(), req.ID)
}

func (h *CommentHandler) CreateComment(c echo.Context, req *CreateCommentRequest) (*model.Comment, error) {
	return h.comments.SaveComment(c.Request().Context(), req.CommentCreatePayload)
}

func (h *CommentHandler) UpdateComment(c echo.Context, req *UpdateCommentRequest) (*model.Comment, error) {
	return h.comments.UpdateComment(c.Request().Context(), req.CommentUpdatePayload, req.ID)
}

func (h *CommentHandler) DeleteComment(c echo.Context, req *IDRequest) error {
	return h.comments.DeleteComment(c.Request().Context(), req.ID)
}
