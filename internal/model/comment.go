package model

// Comment is a user's comment on a post.
type Comment struct {
	ID     int64  `json:"id" db:"id"`
	Text   string `json:"text" db:"text"`
	PostID int64  `json:"postId" db:"post_id"`
	UserID int64  `json:"userId" db:"user_id"`
}

type CommentCreatePayload struct {
	Text   string `json:"text" validate:"required"`
	UserID int64  `json:"userId" validate:"required,min=1"`
	PostID int64  `json:"postId" validate:"required,min=1"`
}

type CommentUpdatePayload struct {
	Text string `json:"text" validate:"required"`
}
