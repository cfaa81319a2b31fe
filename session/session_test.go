package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "token")
}

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(expiresAt)}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return tok
}

func TestInit_NoPersistedCredential(t *testing.T) {
	s := NewStore(tokenPath(t))
	s.Init()
	assert.False(t, s.SignedIn())
	assert.Empty(t, s.Token())
}

func TestInit_ValidCredential(t *testing.T) {
	path := tokenPath(t)
	tok := signedToken(t, time.Now().Add(time.Hour))
	require.NoError(t, os.WriteFile(path, []byte(tok), 0o600))

	s := NewStore(path)
	s.Init()
	assert.True(t, s.SignedIn())
	assert.Equal(t, tok, s.Token())
}

func TestInit_ExpiredCredentialDiscarded(t *testing.T) {
	path := tokenPath(t)
	tok := signedToken(t, time.Now().Add(-time.Hour))
	require.NoError(t, os.WriteFile(path, []byte(tok), 0o600))

	s := NewStore(path)
	s.Init()
	assert.False(t, s.SignedIn())
	assert.Empty(t, s.Token())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "expired credential file should be removed")
}

func TestInit_OpaqueTokenAccepted(t *testing.T) {
	path := tokenPath(t)
	require.NoError(t, os.WriteFile(path, []byte("opaque-bearer-token"), 0o600))

	s := NewStore(path)
	s.Init()
	assert.True(t, s.SignedIn())
}

func TestSetTokenThenClear(t *testing.T) {
	path := tokenPath(t)
	s := NewStore(path)
	s.Init()

	require.NoError(t, s.SetToken("fresh-token"))
	assert.True(t, s.SignedIn())
	assert.Equal(t, "fresh-token", s.Token())

	// The credential survives a restart.
	s2 := NewStore(path)
	s2.Init()
	assert.True(t, s2.SignedIn())

	require.NoError(t, s.Clear())
	assert.False(t, s.SignedIn())
	assert.Empty(t, s.Token())

	s3 := NewStore(path)
	s3.Init()
	assert.False(t, s3.SignedIn())
}

func TestClear_WithoutPersistedFile(t *testing.T) {
	s := NewStore(tokenPath(t))
	assert.NoError(t, s.Clear())
}
