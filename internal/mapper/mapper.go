// Package mapper converts write payloads into entities.
//
// All functions are pure. Reference resolution happens before mapping, so
// the owner, post and user passed in are already loaded from the store.
package mapper

import "github.com/deppfellow/blog-backend/internal/model"

func ToUser(p model.UserPayload) model.User {
	return model.User{
		Username: p.Username,
		Password: p.Password,
	}
}

// ApplyUserUpdate returns user with username and password replaced.
func ApplyUserUpdate(user model.User, p model.UserPayload) model.User {
	user.Username = p.Username
	user.Password = p.Password
	return user
}

func ToPost(p model.PostCreatePayload, owner *model.User) model.Post {
	return model.Post{
		Title:  p.Title,
		Text:   p.Text,
		UserID: owner.ID,
	}
}

// ApplyPostUpdate changes title and text only; the owner never moves.
func ApplyPostUpdate(post model.Post, p model.PostUpdatePayload) model.Post {
	post.Title = p.Title
	post.Text = p.Text
	return post
}

func ToComment(p model.CommentCreatePayload, user *model.User, post *model.Post) model.Comment {
	return model.Comment{
		Text:   p.Text,
		PostID: post.ID,
		UserID: user.ID,
	}
}

func ApplyCommentUpdate(comment model.Comment, p model.CommentUpdatePayload) model.Comment {
	comment.Text = p.Text
	return comment
}

func ToLike(post *model.Post, user *model.User) model.Like {
	return model.Like{
		PostID: post.ID,
		UserID: user.ID,
	}
}
