package model

// Post is owned by exactly one User.
type Post struct {
	ID     int64  `json:"id" db:"id"`
	Title  string `json:"title" db:"title"`
	Text   string `json:"text" db:"text"`
	UserID int64  `json:"userId" db:"user_id"`
}

// PostCreatePayload is the input of PostService.SavePost.
// UserID names the owner, which must already exist.
type PostCreatePayload struct {
	Title  string `json:"title" validate:"required,max=255"`
	Text   string `json:"text" validate:"required"`
	UserID int64  `json:"userId" validate:"required,min=1"`
}

// PostUpdatePayload holds the only fields an update may change.
type PostUpdatePayload struct {
	Title string `json:"title" validate:"required,max=255"`
	Text  string `json:"text" validate:"required"`
}
