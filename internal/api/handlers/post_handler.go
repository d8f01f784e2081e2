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

// PostHandler handles HTTP requests for posts.
type PostHandler struct {
	service services.PostServiceProvider
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(service services.PostServiceProvider) *PostHandler {
	return &PostHandler{service: service}
}

// PostPayload defines the structure for post create requests.
type PostPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate checks the post fields.
func (p PostPayload) Validate() []FieldError {
	var errs []FieldError
	if p.Title == "" {
		errs = append(errs, FieldError{Msg: "Title is required", Param: "title"})
	}
	if p.Content == "" {
		errs = append(errs, FieldError{Msg: "Content is required", Param: "content"})
	}
	return errs
}

// UpdatePostPayload defines the structure for post update requests. Fields
// left empty keep their stored value.
type UpdatePostPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Create handles new post creation.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := auth.CallerID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Missing auth token")
		return
	}

	var payload PostPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := payload.Validate(); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	post, err := h.service.Create(r.Context(), payload.Title, payload.Content, callerID)
	if err != nil {
		log.Error().Err(err).Str("user_id", callerID).Msg("Failed to create post")
		writeMessage(w, http.StatusInternalServerError, "Server Error")
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

// GetAll handles listing all posts.
func (h *PostHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list posts")
		writeMessage(w, http.StatusInternalServerError, "Server Error")
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}
	writeJSON(w, http.StatusOK, posts)
}

// Get handles retrieving a single post by id.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	post, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Post not found")
			return
		}
		log.Error().Err(err).Str("post_id", id).Msg("Failed to get post")
		writeMessage(w, http.StatusInternalServerError, "Server Error")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// Update handles updating a post's title and/or content.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	callerID, ok := auth.CallerID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Missing auth token")
		return
	}

	id := chi.URLParam(r, "id")
	var payload UpdatePostPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	post, err := h.service.Update(r.Context(), id, payload.Title, payload.Content, callerID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			writeMessage(w, http.StatusNotFound, "Post not found")
		case errors.Is(err, services.ErrNotOwner):
			writeMessage(w, http.StatusUnauthorized, "User not authorized")
		default:
			log.Error().Err(err).Str("post_id", id).Msg("Failed to update post")
			writeMessage(w, http.StatusInternalServerError, "Server Error")
		}
		return
	}

	writeJSON(w, http.StatusOK, post)
}

// Delete handles post deletion.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	callerID, ok := auth.CallerID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Missing auth token")
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id, callerID); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			writeMessage(w, http.StatusNotFound, "Post not found")
		case errors.Is(err, services.ErrNotOwner):
			writeMessage(w, http.StatusUnauthorized, "User not authorized")
		default:
			log.Error().Err(err).Str("post_id", id).Msg("Failed to delete post")
			writeMessage(w, http.StatusInternalServerError, "Server Error")
		}
		return
	}

	writeMessage(w, http.StatusOK, "Post removed")
}
