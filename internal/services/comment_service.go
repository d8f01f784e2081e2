package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/omkarRanu3625/Blog-application/internal/models"
	"github.com/omkarRanu3625/Blog-application/internal/store"
)

// CommentServiceProvider defines the interface for comment services.
type CommentServiceProvider interface {
	Create(ctx context.Context, postID, text, callerID string) (models.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]models.Comment, error)
	Delete(ctx context.Context, id, callerID string) error
}

// CommentService provides comment creation, listing and author-only deletion.
type CommentService struct {
	comments store.CommentStore
	posts    store.PostStore
}

// NewCommentService creates a new CommentService.
func NewCommentService(comments store.CommentStore, posts store.PostStore) *CommentService {
	return &CommentService{comments: comments, posts: posts}
}

// Create persists a new comment on an existing post.
func (s *CommentService) Create(ctx context.Context, postID, text, callerID string) (models.Comment, error) {
	if _, err := s.posts.GetPost(ctx, postID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Comment{}, ErrNotFound
		}
		return models.Comment{}, err
	}

	comment := models.Comment{
		ID:        uuid.New().String(),
		Text:      text,
		Author:    models.Author{ID: callerID},
		PostID:    postID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.comments.CreateComment(ctx, &comment); err != nil {
		return models.Comment{}, err
	}

	created, err := s.comments.GetComment(ctx, comment.ID)
	if err != nil {
		return models.Comment{}, err
	}
	return created, nil
}

// ListByPost returns all comments on a post with author names resolved. An
// unknown post id yields an empty list rather than an error.
func (s *CommentService) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	return s.comments.ListCommentsByPost(ctx, postID)
}

// Delete removes a comment. Only the author may delete.
func (s *CommentService) Delete(ctx context.Context, id, callerID string) error {
	comment, err := s.comments.GetComment(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if comment.Author.ID != callerID {
		return ErrNotOwner
	}

	if err := s.comments.DeleteComment(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
