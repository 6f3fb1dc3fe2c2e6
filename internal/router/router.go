// Package router builds the echo instance: global middleware, the error
// handler and every route.
package router

import (
	"net/http"

	"github.com/deppfellow/blog-backend/internal/handler"
	"github.com/deppfellow/blog-backend/internal/middleware"
	"github.com/deppfellow/blog-backend/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the echo instance. The rate limiter runs after the
// request logger so rejected requests are still logged with their id.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	mws := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = mws.Global.GlobalErrorHandler

	router.Use(
		mws.Global.CORS(),
		mws.Global.Secure(),
		middleware.RequestID(),
		mws.Tracing.NewRelicMiddleware(),
		mws.Tracing.EnhanceTracing(),
		mws.ContextEnhancer.EnhanceContext(),
		mws.Global.RequestLogger(),
		mws.Global.Recover(),
		mws.RateLimit.Limit(),
	)

	registerSystemRoutes(router, h)
	registerBlogRoutes(router, h)

	return router
}

func registerBlogRoutes(r *echo.Echo, h *handler.Handlers) {
	users := r.Group("/users")
	users.GET("", handler.Handle(h.Users.Handler, h.Users.ListUsers, http.StatusOK, newRequest[handler.EmptyRequest]))
	users.GET("/:id", handler.Handle(h.Users.Handler, h.Users.GetUser, http.StatusOK, newRequest[handler.IDRequest]))
	users.POST("", handler.Handle(h.Users.Handler, h.Users.CreateUser, http.StatusCreated, newRequest[handler.CreateUserRequest]))
	users.PUT("/:id", handler.Handle(h.Users.Handler, h.Users.UpdateUser, http.StatusOK, newRequest[handler.UpdateUserRequest]))
	users.DELETE("/:id", handler.HandleNoContent(h.Users.Handler, h.Users.DeleteUser, http.StatusOK, newRequest[handler.IDRequest]))

	posts := r.Group("/posts")
	posts.GET("", handler.Handle(h.Posts.Handler, h.Posts.ListPosts, http.StatusOK, newRequest[handler.ListPostsRequest]))
	posts.GET("/:id", handler.Handle(h.Posts.Handler, h.Posts.GetPost, http.StatusOK, newRequest[handler.IDRequest]))
	posts.POST("", handler.Handle(h.Posts.Handler, h.Posts.CreatePost, http.StatusCreated, newRequest[handler.CreatePostRequest]))
	posts.PUT("/:id", handler.Handle(h.Posts.Handler, h.Posts.UpdatePost, http.StatusOK, newRequest[handler.UpdatePostRequest]))
	posts.DELETE("/:id", handler.HandleNoContent(h.Posts.Handler, h.Posts.DeletePost, http.StatusOK, newRequest[handler.IDRequest]))

	comments := r.Group("/comments")
	comments.GET("", handler.Handle(h.Comments.Handler, h.Comments.ListComments, http.StatusOK, newRequest[handler.ListRelationRequest]))
	comments.GET("/:id", handler.Handle(h.Comments.Handler, h.Comments.GetComment, http.StatusOK, newRequest[handler.IDRequest]))
	comments.POST("", handler.Handle(h.Comments.Handler, h.Comments.CreateComment, http.StatusCreated, newRequest[handler.CreateCommentRequest]))
	comments.PUT("/:id", handler.Handle(h.Comments.Handler, h.Comments.UpdateComment, http.StatusOK, newRequest[handler.UpdateCommentRequest]))
	comments.DELETE("/:id", handler.HandleNoContent(h.Comments.Handler, h.Comments.DeleteComment, http.StatusOK, newRequest[handler.IDRequest]))

	// Creating a like answers 200, not 201.
	likes := r.Group("/likes")
	likes.GET("", handler.Handle(h.Likes.Handler, h.Likes.ListLikes, http.StatusOK, newRequest[handler.ListRelationRequest]))
	likes.GET("/:id", handler.Handle(h.Likes.Handler, h.Likes.GetLike, http.StatusOK, newRequest[handler.IDRequest]))
	likes.POST("", handler.Handle(h.Likes.Handler, h.Likes.CreateLike, http.StatusOK, newRequest[handler.CreateLikeRequest]))
	likes.DELETE("/:id", handler.HandleNoContent(h.Likes.Handler, h.Likes.DeleteLike, http.StatusOK, newRequest[handler.IDRequest]))
}

func newRequest[T any]() *T {
	return new(T)
}
