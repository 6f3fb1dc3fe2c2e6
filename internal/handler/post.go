package handler

import (
	"github.com/deppfellow/blog-backend/internal/model"
	"github.com/deppfellow/blog-backend/internal/server"
	"github.com/deppfellow/blog-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type PostHandler struct {
	Handler
	posts *service.PostService
}

func NewPostHandler(s *server.Server, posts *service.PostService) *PostHandler {
	return &PostHandler{Handler: NewHandler(s), posts: posts}
}

func (h *PostHandler) ListPosts(c echo.Context, req *ListPostsRequest) ([]model.Post, error) {
	userID, err := optionalID("userId", req.UserID)
	if err != nil {
		return nil, err
	}
	return h.posts.GetAllPosts(c.Request().Context(), userID)
}

func (h *PostHandler) GetPost(c echo.Context, req *IDRequest) (*model.Post, error) {
	return h.posts.GetPostByID(c.Request().Context(), req.ID)
}

func (h *PostHandler) CreatePost(c echo.Context, req *CreatePostRequest) (*model.Post, error) {
	return h.posts.SavePost(c.Request().Context(), req.PostCreatePayload)
}

func (h *PostHandler) UpdatePost(c echo.Context, req *UpdatePostRequest) (*model.Post, error) {
	return h.posts.UpdatePost(c.Request().Context(), req.PostUpdatePayload, req.ID)
}

func (h *PostHandler) DeletePost(c echo.Context, req *IDRequest) error {
	return h.posts.DeletePost(c.Request().Context(), req.ID)
}
