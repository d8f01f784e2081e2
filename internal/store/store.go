package store

import (
	"context"
	"errors"

	"github.com/omkarRanu3625/Blog-application/internal/models"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("duplicate email")
)

// UserStore persists user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id string) (models.User, error)
	// GetUserByEmail includes the password hash for credential checks.
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
}

// PostStore persists posts. Reads resolve the author's name.
type PostStore interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPost(ctx context.Context, id string) (models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	UpdatePost(ctx context.Context, post *models.Post) error
	DeletePost(ctx context.Context, id string) error
}

// CommentStore persists comments. Reads resolve the author's name.
type CommentStore interface {
	CreateComment(ctx context.Context, comment *models.Comment) error
	GetComment(ctx context.Context, id string) (models.Comment, error)
	ListCommentsByPost(ctx context.Context, postID string) ([]models.Comment, error)
	DeleteComment(ctx context.Context, id string) error
}

// Store is the full persistence surface of the application.
type Store interface {
	UserStore
	PostStore
	CommentStore
}
