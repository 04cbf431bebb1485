package entity

import "time"

type Post struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	UserID    uint      `json:"user_id"`
	User      *User     `json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostPage is one slice of the post listing.
type PostPage struct {
	Posts []*Post `json:"posts"`
	Page  int     `json:"page"`
	Size  int     `json:"size"`
	Total int64   `json:"total"`
}
