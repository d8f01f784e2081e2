package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/omkarRanu3625/Blog-application/internal/database"
	"github.com/omkarRanu3625/Blog-application/internal/models"
	"github.com/omkarRanu3625/Blog-application/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	return New(db)
}

func seedUser(t *testing.T, s *Store, name, email string) models.User {
	t.Helper()
	user := models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, s.CreateUser(context.Background(), &user))
	return user
}

func seedPost(t *testing.T, s *Store, authorID, title, content string) models.Post {
	t.Helper()
	now := time.Now().UTC()
	post := models.Post{
		ID:        uuid.New().String(),
		Title:     title,
		Content:   content,
		Author:    models.Author{ID: authorID},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, s.CreatePost(context.Background(), &post))
	return post
}

func TestUserStore(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user := seedUser(t, s, "Alice", "alice@example.com")

	got, err := s.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Empty(t, got.PasswordHash, "GetUser must not return the hash")

	byEmail, err := s.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, "hash", byEmail.PasswordHash)

	_, err = s.GetUser(ctx, "nope")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.GetUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUserStoreDuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	seedUser(t, s, "Alice", "alice@example.com")

	dup := models.User{
		ID:           uuid.New().String(),
		Name:         "Other Alice",
		Email:        "alice@example.com",
		PasswordHash: "hash2",
		CreatedAt:    time.Now().UTC(),
	}
	err := s.CreateUser(context.Background(), &dup)
	assert.ErrorIs(t, err, store.ErrDuplicateEmail)
}

func TestPostStore(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, s, "Alice", "alice@example.com")

	post := seedPost(t, s, user.ID, "Title", "Content")

	got, err := s.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Title", got.Title)
	assert.Equal(t, "Content", got.Content)
	assert.Equal(t, user.ID, got.Author.ID)
	assert.Equal(t, "Alice", got.Author.Name, "author name must be resolved")

	posts, err := s.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Alice", posts[0].Author.Name)

	got.Title = "New Title"
	got.UpdatedAt = time.Now().UTC()
	require.NoError(t, s.UpdatePost(ctx, &got))

	updated, err := s.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, "Content", updated.Content)

	require.NoError(t, s.DeletePost(ctx, post.ID))
	_, err = s.GetPost(ctx, post.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, s.DeletePost(ctx, post.ID), store.ErrNotFound)
	missing := models.Post{ID: "nope", Title: "t", Content: "c"}
	assert.ErrorIs(t, s.UpdatePost(ctx, &missing), store.ErrNotFound)
}

func TestCommentStore(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, s, "Alice", "alice@example.com")
	post := seedPost(t, s, user.ID, "Title", "Content")

	comment := models.Comment{
		ID:        uuid.New().String(),
		Text:      "hi",
		Author:    models.Author{ID: user.ID},
		PostID:    post.ID,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, s.CreateComment(ctx, &comment))

	got, err := s.GetComment(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "hi", got.Text)
	assert.Equal(t, "Alice", got.Author.Name)
	assert.Equal(t, post.ID, got.PostID)

	comments, err := s.ListCommentsByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Alice", comments[0].Author.Name)

	empty, err := s.ListCommentsByPost(ctx, "unknown-post")
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, s.DeleteComment(ctx, comment.ID))
	_, err = s.GetComment(ctx, comment.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.DeleteComment(ctx, comment.ID), store.ErrNotFound)
}

func TestDeletePostLeavesComments(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, s, "Alice", "alice@example.com")
	post := seedPost(t, s, user.ID, "Title", "Content")

	comment := models.Comment{
		ID:        uuid.New().String(),
		Text:      "still here",
		Author:    models.Author{ID: user.ID},
		PostID:    post.ID,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, s.CreateComment(ctx, &comment))

	require.NoError(t, s.DeletePost(ctx, post.ID))

	comments, err := s.ListCommentsByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 1, "comments are not cascade-deleted")
}
