package service

import (
	"errors"
	"fmt"
	"strings"

	"recipebox/internal/models"
	"recipebox/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles user auth logic
type AuthService struct {
	users repository.Users
}

func NewAuthService(users repository.Users) *AuthService {
	return &AuthService{users: users}
}

var _ Authorization = (*AuthService)(nil)

// RegisterInput carries the signup fields. ImageURL and Bio stay nil when the
// client omitted them.
type RegisterInput struct {
	Username string
	Password string
	ImageURL *string
	Bio      *string
}

// Register hashes the password and creates a new user. A username collision
// surfaces as ErrUsernameTaken; bad input as a ValidationError.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	if strings.TrimSpace(input.Username) == "" {
		return nil, newValidationError("username is required")
	}
	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Username:     input.Username,
		PasswordHash: hash,
		ImageURL:     input.ImageURL,
		Bio:          input.Bio,
	}
	id, err := s.users.Create(u)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	u.ID = id
	return u, nil
}

// Authenticate validates credentials and returns the matching user.
// Any mismatch, including an unknown username, yields ErrInvalidCredentials so
// callers can't distinguish which half failed.
func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	u, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// UserByID fetches a user by id; an absent row yields ErrUserNotFound so a
// stale session can be treated as unauthenticated instead of faulting.
func (s *AuthService) UserByID(id int) (*models.User, error) {
	u, err := s.users.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("lookup user id=%d: %w", id, err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", newValidationError("password is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
