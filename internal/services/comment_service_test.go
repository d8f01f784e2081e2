package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentCreateRequiresPost(t *testing.T) {
	st := newTestStore(t)
	users := NewUserService(st, &fakeSender{})
	posts := NewPostService(st)
	comments := NewCommentService(st, st)
	ctx := context.Background()

	author := registerUser(t, users, "A", "a@x.com")

	_, err := comments.Create(ctx, "no-such-post", "hi", author.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	post, err := posts.Create(ctx, "T", "C", author.ID)
	require.NoError(t, err)

	comment, err := comments.Create(ctx, post.ID, "hi", author.ID)
	require.NoError(t, err)
	assert.Equal(t, "hi", comment.Text)
	assert.Equal(t, post.ID, comment.PostID)

	listed, err := comments.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "A", listed[0].Author.Name, "author name must be resolved")
}

func TestCommentListUnknownPostIsEmpty(t *testing.T) {
	st := newTestStore(t)
	comments := NewCommentService(st, st)

	listed, err := comments.ListByPost(context.Background(), "no-such-post")
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestCommentDeleteByNonAuthor(t *testing.T) {
	st := newTestStore(t)
	users := NewUserService(st, &fakeSender{})
	posts := NewPostService(st)
	comments := NewCommentService(st, st)
	ctx := context.Background()

	author := registerUser(t, users, "A", "a@x.com")
	intruder := registerUser(t, users, "B", "b@x.com")

	post, err := posts.Create(ctx, "T", "C", author.ID)
	require.NoError(t, err)
	comment, err := comments.Create(ctx, post.ID, "hi", author.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, comments.Delete(ctx, comment.ID, intruder.ID), ErrNotOwner)

	// Stored comment is unchanged.
	listed, err := comments.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, comment, listed[0])

	require.NoError(t, comments.Delete(ctx, comment.ID, author.ID))
	assert.ErrorIs(t, comments.Delete(ctx, comment.ID, author.ID), ErrNotFound)
}
