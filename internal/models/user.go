package models

// User is a public directory entry returned by the users API.
type User struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
}
