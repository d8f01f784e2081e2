package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/omkarRanu3625/Blog-application/internal/models"
	"github.com/omkarRanu3625/Blog-application/internal/store"
)

// CreateComment inserts a new comment record.
func (s *Store) CreateComment(ctx context.Context, comment *models.Comment) error {
	stmt, err := s.db.PrepareContext(ctx, "INSERT INTO comments(id, text, author_id, post_id, created_at) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, comment.ID, comment.Text, comment.Author.ID, comment.PostID, comment.CreatedAt)
	return err
}

// GetComment retrieves a single comment with its author's name resolved.
func (s *Store) GetComment(ctx context.Context, id string) (models.Comment, error) {
	var comment models.Comment
	row := s.db.QueryRowContext(ctx, `
		SELECT c.id, c.text, c.author_id, u.name, c.post_id, c.created_at
		FROM comments c JOIN users u ON u.id = c.author_id
		WHERE c.id = ?`, id)
	err := row.Scan(&comment.ID, &comment.Text, &comment.Author.ID, &comment.Author.Name, &comment.PostID, &comment.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Comment{}, fmt.Errorf("comment %s: %w", id, store.ErrNotFound)
		}
		return models.Comment{}, err
	}
	return comment, nil
}

// ListCommentsByPost retrieves all comments on a post with author names
// resolved. An unknown post id yields an empty result, not an error.
func (s *Store) ListCommentsByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.text, c.author_id, u.name, c.post_id, c.created_at
		FROM comments c JOIN users u ON u.id = c.author_id
		WHERE c.post_id = ?
		ORDER BY c.created_at ASC`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var comment models.Comment
		if err := rows.Scan(&comment.ID, &comment.Text, &comment.Author.ID, &comment.Author.Name, &comment.PostID, &comment.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

// DeleteComment removes a comment.
func (s *Store) DeleteComment(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM comments WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("comment %s: %w", id, store.ErrNotFound)
	}
	return nil
}
