package model

// User is a blog account.
//
// Password is stored and returned exactly as given.
type User struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"password" db:"password"`
}

// UserPayload carries the mutable fields of a User.
// It is used both to create a user and to update one.
type UserPayload struct {
	Username string `json:"username" validate:"required,max=255"`
	Password string `json:"password" validate:"required,max=255"`
}
