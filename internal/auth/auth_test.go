package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func TestGenerateAndParseToken(t *testing.T) {
	id := uuid.New()
	token, err := GenerateToken(id)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	got, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if got != id {
		t.Fatalf("ParseToken = %s, want %s", got, id)
	}
}

func TestParseTokenRejects(t *testing.T) {
	secret, err := jwtSecret.Bytes()
	if err != nil {
		t.Fatalf("jwtSecret.Bytes: %v", err)
	}
	sign := func(claims jwt.MapClaims, key []byte) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		return s
	}
	future := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.token"},
		{"wrong key", sign(jwt.MapClaims{"sub": uuid.NewString(), "exp": future}, []byte("other-secret"))},
		{"expired", sign(jwt.MapClaims{"sub": uuid.NewString(), "exp": time.Now().Add(-time.Hour).Unix()}, secret)},
		{"no expiry", sign(jwt.MapClaims{"sub": uuid.NewString()}, secret)},
		{"bad subject", sign(jwt.MapClaims{"sub": "alice", "exp": future}, secret)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseToken(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("err = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestMiddleware(t *testing.T) {
	id := uuid.New()
	token, err := GenerateToken(id)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid", "Bearer " + token, http.StatusOK},
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen uuid.UUID
			err := Middleware(func(c echo.Context) error {
				var err error
				seen, err = GetUserIDFromContext(c)
				if err != nil {
					return err
				}
				return c.NoContent(http.StatusOK)
			})(c)

			if tt.status == http.StatusOK {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if seen != id {
					t.Fatalf("user id = %s, want %s", seen, id)
				}
				return
			}
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != tt.status {
				t.Fatalf("err = %v, want HTTP %d", err, tt.status)
			}
		})
	}
}

func TestRequestNormalize(t *testing.T) {
	signup := SignupRequest{Email: "  Ada@Example.COM ", Password: "correct-horse"}
	if err := signup.Normalize(); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if signup.Email != "ada@example.com" {
		t.Errorf("Email = %q", signup.Email)
	}

	short := SignupRequest{Email: "ada@example.com", Password: "short"}
	if err := short.Normalize(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("short password err = %v", err)
	}

	login := LoginRequest{Email: "nope", Password: "x"}
	if err := login.Normalize(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("bad email err = %v", err)
	}
}
