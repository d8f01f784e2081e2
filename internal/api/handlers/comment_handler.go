package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/omkarRanu3625/Blog-application/internal/auth"
	"github.com/omkarRanu3625/Blog-application/internal/models"
	"github.com/omkarRanu3625/Blog-application/internal/services"
	"github.com/rs/zerolog/log"
)

// CommentHandler handles HTTP requests for comments.
type CommentHandler struct {
	service services.CommentServiceProvider
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(service services.CommentServiceProvider) *CommentHandler {
	return &CommentHandler{service: service}
}

// CommentPayload defines the structure for comment create requests.
type CommentPayload struct {
	Text string `json:"text"`
}

// Validate checks the comment fields.
func (p CommentPayload) Validate() []FieldError {
	var errs []FieldError
	if p.Text == "" {
		errs = append(errs, FieldError{Msg: "Text is required", Param: "text"})
	}
	return errs
}

// Create handles new comment creation on a post.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := auth.CallerID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Missing auth token")
		return
	}

	postID := chi.URLParam(r, "id")
	var payload CommentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := payload.Validate(); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	comment, err := h.service.Create(r.Context(), postID, payload.Text, callerID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Post not found")
			return
		}
		log.Error().Err(err).Str("post_id", postID).Msg("Failed to create comment")
		writeMessage(w, http.StatusInternalServerError, "Server Error")
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

// GetByPost handles listing all comments on a post. An unknown post id
// yields an empty list.
func (h *CommentHandler) GetByPost(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")
	comments, err := h.service.ListByPost(r.Context(), postID)
	if err != nil {
		log.Error().Err(err).Str("post_id", postID).Msg("Failed to list comments")
		writeMessage(w, http.StatusInternalServerError, "Server Error")
		return
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	writeJSON(w, http.StatusOK, comments)
}

// Delete handles comment deletion.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	callerID, ok := auth.CallerID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Missing auth token")
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id, callerID); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			writeMessage(w, http.StatusNotFound, "Comment not found")
		case errors.Is(err, services.ErrNotOwner):
			writeMessage(w, http.StatusUnauthorized, "User not authorized")
		default:
			log.Error().Err(err).Str("comment_id", id).Msg("Failed to delete comment")
			writeMessage(w, http.StatusInternalServerError, "Server Error")
		}
		return
	}

	writeMessage(w, http.StatusOK, "Comment removed")
}
