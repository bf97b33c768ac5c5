package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

var (
	ErrUserExists   = errors.New("user already exists")
	ErrInvalidCreds = errors.New("invalid credentials")

	jwtSecret = NewSecret("JWT_SECRET")
)

// Service owns the users table. Carts reference users by id, so login
// reports how many datasets the user already has in theirs.
type Service struct {
	db *pgxpool.Pool
}

func NewService(db *pgxpool.Pool) *Service {
	return &Service{db: db}
}

func (s *Service) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	if err := req.Normalize(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing failed: %w", err)
	}

	var user User
	err = s.db.QueryRow(ctx, `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (email) DO NOTHING
		RETURNING id, email, created_at
	`, req.Email, string(hash)).Scan(&user.ID, &user.Email, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserExists
	}
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return issue(user, 0)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if err := req.Normalize(); err != nil {
		return nil, err
	}

	var user User
	var cartSize int
	err := s.db.QueryRow(ctx, `
		SELECT u.id, u.email, u.password_hash, u.created_at,
			(SELECT COUNT(*) FROM cart_items c WHERE c.user_id = u.id)
		FROM users u
		WHERE u.email = $1
	`, req.Email).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt, &cartSize)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrInvalidCreds
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCreds
	}

	return issue(user, cartSize)
}

// issue builds the response for an authenticated user. The hash never
// leaves the service.
func issue(user User, cartSize int) (*AuthResponse, error) {
	token, err := GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return &AuthResponse{Token: token, User: user, CartSize: cartSize}, nil
}

// GenerateToken signs an HS256 token whose subject is the user id.
func GenerateToken(userID uuid.UUID) (string, error) {
	key, err := jwtSecret.Bytes()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}
