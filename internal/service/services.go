package service

import (
	"github.com/deppfellow/blog-backend/internal/lib/job"
	"github.com/deppfellow/blog-backend/internal/repository"
	"github.com/deppfellow/blog-backend/internal/server"
)

type Services struct {
	Users    *UserService
	Posts    *PostService
	Comments *CommentService
	Likes    *LikeService
	Job      *job.JobService
}

// NewServices wires every service over store. Engagement notifications go
// through the server's job service when one is running.
func NewServices(s *server.Server, store repository.Transactor) *Services {
	var notifier EngagementNotifier
	if s.Job != nil {
		notifier = s.Job
	}

	return &Services{
		Users:    NewUserService(s, store),
		Posts:    NewPostService(s, store),
		Comments: NewCommentService(s, store, notifier),
		Likes:    NewLikeService(s, store, notifier),
		Job:      s.Job,
	}
}
