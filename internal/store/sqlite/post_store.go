package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/omkarRanu3625/Blog-application/internal/models"
	"github.com/omkarRanu3625/Blog-application/internal/store"
)

// CreatePost inserts a new post record.
func (s *Store) CreatePost(ctx context.Context, post *models.Post) error {
	stmt, err := s.db.PrepareContext(ctx, "INSERT INTO posts(id, title, content, author_id, created_at, updated_at) VALUES(?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, post.ID, post.Title, post.Content, post.Author.ID, post.CreatedAt, post.UpdatedAt)
	return err
}

// GetPost retrieves a single post with its author's name resolved.
func (s *Store) GetPost(ctx context.Context, id string) (models.Post, error) {
	var post models.Post
	row := s.db.QueryRowContext(ctx, `
		SELECT p.id, p.title, p.content, p.author_id, u.name, p.created_at, p.updated_at
		FROM posts p JOIN users u ON u.id = p.author_id
		WHERE p.id = ?`, id)
	err := row.Scan(&post.ID, &post.Title, &post.Content, &post.Author.ID, &post.Author.Name, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, fmt.Errorf("post %s: %w", id, store.ErrNotFound)
		}
		return models.Post{}, err
	}
	return post, nil
}

// ListPosts retrieves all posts with author names resolved.
func (s *Store) ListPosts(ctx context.Context) ([]models.Post, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.title, p.content, p.author_id, u.name, p.created_at, p.updated_at
		FROM posts p JOIN users u ON u.id = p.author_id
		ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.Author.ID, &post.Author.Name, &post.CreatedAt, &post.UpdatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// UpdatePost writes back a post's title, content and updated timestamp.
func (s *Store) UpdatePost(ctx context.Context, post *models.Post) error {
	res, err := s.db.ExecContext(ctx, "UPDATE posts SET title = ?, content = ?, updated_at = ? WHERE id = ?",
		post.Title, post.Content, post.UpdatedAt, post.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("post %s: %w", post.ID, store.ErrNotFound)
	}
	return nil
}

// DeletePost removes a post. Its comments are left in place.
func (s *Store) DeletePost(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM posts WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("post %s: %w", id, store.ErrNotFound)
	}
	return nil
}
