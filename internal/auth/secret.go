package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
)

// Secret is a process-wide key read from an environment variable on first
// use. When the variable is empty a random key is generated, so tokens and
// admin access only work for the lifetime of the process.
type Secret struct {
	envVar string

	once  sync.Once
	value []byte
	err   error
}

func NewSecret(envVar string) *Secret {
	return &Secret{envVar: envVar}
}

func (s *Secret) Bytes() ([]byte, error) {
	s.once.Do(func() {
		if v := strings.TrimSpace(os.Getenv(s.envVar)); v != "" {
			s.value = []byte(v)
			return
		}

		buf := make([]byte, 48)
		if _, err := rand.Read(buf); err != nil {
			s.err = fmt.Errorf("failed to generate %s fallback: %w", s.envVar, err)
			return
		}
		s.value = []byte(base64.RawURLEncoding.EncodeToString(buf))
		log.Printf("%s is not set; using ephemeral in-memory fallback secret", s.envVar)
	})

	if s.err != nil {
		return nil, s.err
	}
	if len(s.value) == 0 {
		return nil, errors.New(s.envVar + " unavailable")
	}
	return s.value, nil
}

// Matches compares candidate with the secret in constant time.
func (s *Secret) Matches(candidate string) (bool, error) {
	key, err := s.Bytes()
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(key, []byte(candidate)) == 1, nil
}
