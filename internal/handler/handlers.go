package handler

import (
	"github.com/deppfellow/blog-backend/internal/server"
	"github.com/deppfellow/blog-backend/internal/service"
)

// Handlers groups every HTTP handler for the router.
type Handlers struct {
	Health   *HealthHandler
	Users    *UserHandler
	Posts    *PostHandler
	Comments *CommentHandler
	Likes    *LikeHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		Users:    NewUserHandler(s, services.Users),
		Posts:    NewPostHandler(s, services.Posts),
		Comments: NewCommentHandler(s, services.Comments),
		Likes:    NewLikeHandler(s, services.Likes),
	}
}
