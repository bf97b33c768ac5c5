package auth

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt input limit
)

var ErrInvalidInput = errors.New("invalid input")

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type AuthResponse struct {
	Token    string `json:"token"`
	User     User   `json:"user"`
	CartSize int    `json:"cart_size"`
}

// Normalize lower-cases the email and checks the request is usable.
func (r *SignupRequest) Normalize() error {
	email, err := normalizeEmail(r.Email)
	if err != nil {
		return err
	}
	r.Email = email
	if len(r.Password) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLen)
	}
	if len(r.Password) > maxPasswordLen {
		return fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidInput, maxPasswordLen)
	}
	return nil
}

func (r *LoginRequest) Normalize() error {
	email, err := normalizeEmail(r.Email)
	if err != nil {
		return err
	}
	r.Email = email
	if r.Password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	return nil
}

func normalizeEmail(raw string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: email is not valid", ErrInvalidInput)
	}
	return strings.ToLower(addr.Address), nil
}
