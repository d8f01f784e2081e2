package models

import "time"

// Author is the resolved projection of the user a post or comment belongs to.
type Author struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Post represents a blog post. Author is set at creation and never changes.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
