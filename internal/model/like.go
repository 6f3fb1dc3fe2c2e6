package model

// Like is a single like by a user on a post.
//
// The same (user, post) pair may be liked any number of times;
// every like is its own row.
type Like struct {
	ID     int64 `json:"id" db:"id"`
	PostID int64 `json:"postId" db:"post_id"`
	UserID int64 `json:"userId" db:"user_id"`
}

type LikeCreatePayload struct {
	UserID int64 `json:"userId" validate:"required,min=1"`
	PostID int64 `json:"postId" validate:"required,min=1"`
}
