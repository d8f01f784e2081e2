package models

import "time"

// Comment represents a comment on a post. Author and post references are
// immutable after creation.
type Comment struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    Author    `json:"author"`
	PostID    string    `json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
}
