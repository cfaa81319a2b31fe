package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/oliveplate/oliveplate/utils"
)

// Store is the process-wide session state: whether a user is
// authenticated, and the persisted bearer credential backing that.
// It mutates only at sign-in, sign-up, and sign-out; everything else
// reads it through SignedIn and Token.
type Store struct {
	mu       sync.Mutex
	path     string
	token    string
	signedIn bool
}

// NewStore builds a store persisting its credential at path.
// Call Init once at startup before reading.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Init loads the persisted credential, discarding it when the token
// is a JWT that has already expired. Called once during boot.
func (s *Store) Init() {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	tok := strings.TrimSpace(string(raw))
	if tok == "" {
		return
	}
	if expired(tok) {
		if utils.Sugar != nil {
			utils.Sugar.Infof("persisted credential expired, discarding")
		}
		_ = os.Remove(s.path)
		return
	}
	s.token = tok
	s.signedIn = true
}

// SignedIn reports whether a user is authenticated.
func (s *Store) SignedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signedIn
}

// Token returns the current bearer credential, or "" when signed out.
// Satisfies api.TokenSource.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// SetToken records a credential obtained from a successful sign-in or
// sign-up and persists it.
func (s *Store) SetToken(tok string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create credential dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, []byte(tok), 0o600); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}
	s.token = tok
	s.signedIn = true
	return nil
}

// Clear signs out: forgets the credential and removes the persisted copy.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.signedIn = false
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove credential: %w", err)
	}
	return nil
}

// expired inspects a JWT's exp claim without verifying the signature;
// the client holds no signing key. Opaque (non-JWT) tokens pass
// through untouched.
func expired(tok string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
