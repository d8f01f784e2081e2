package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/omkarRanu3625/Blog-application/internal/email"
	"github.com/omkarRanu3625/Blog-application/internal/models"
	"github.com/omkarRanu3625/Blog-application/internal/store"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	Register(ctx context.Context, name, email, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	GetUserByID(ctx context.Context, id string) (models.User, error)
}

// UserService provides registration and credential verification.
type UserService struct {
	users  store.UserStore
	mailer email.Sender
}

// NewUserService creates a new UserService.
func NewUserService(users store.UserStore, mailer email.Sender) *UserService {
	return &UserService{users: users, mailer: mailer}
}

// Register creates a new user with a hashed password and sends a welcome
// email. Email delivery is best-effort; a transport failure does not fail the
// registration.
func (s *UserService) Register(ctx context.Context, name, emailAddr, password string) (models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        emailAddr,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, err
	}

	subject := "Welcome to the blog"
	body := fmt.Sprintf("Hi %s, your account has been created.", name)
	if err := s.mailer.Send(ctx, user.Email, subject, body); err != nil {
		log.Warn().Err(err).Str("email", user.Email).Msg("Failed to send welcome email")
	}

	// Return user without password hash
	user.PasswordHash = ""
	return user, nil
}

// Login verifies a user's credentials.
func (s *UserService) Login(ctx context.Context, emailAddr, password string) (models.User, error) {
	user, err := s.users.GetUserByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	// Don't send the password hash to the client
	user.PasswordHash = ""
	return user, nil
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(ctx context.Context, id string) (models.User, error) {
	user, err := s.users.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}
