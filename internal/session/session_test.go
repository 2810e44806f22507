package session_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/admin-console/internal/session"
)

func signToken(t *testing.T, role string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"role": role,
		"exp":  exp.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestSessionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	token := signToken(t, session.AdminRole, time.Now().Add(time.Hour))

	s := session.New(path, token, "admin@campushub.org")
	require.NoError(t, s.Save())

	loaded, err := session.Load(path)
	require.NoError(t, err)
	assert.Equal(t, token, loaded.Token)
	assert.Equal(t, "admin@campushub.org", loaded.Email)
	assert.NoError(t, loaded.Check(time.Now()))
}

func TestLoadMissingFileIsEmptySession(t *testing.T) {
	s, err := session.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.ErrorIs(t, s.Check(time.Now()), session.ErrNotLoggedIn)
	assert.False(t, s.Valid())
}

func TestGuardRejectsExpiredToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	s := session.New(path, signToken(t, session.AdminRole, time.Now().Add(-time.Minute)), "")

	assert.ErrorIs(t, s.Check(time.Now()), session.ErrExpired)
}

func TestGuardRejectsNonAdminRole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	s := session.New(path, signToken(t, "student", time.Now().Add(time.Hour)), "")

	assert.ErrorIs(t, s.Check(time.Now()), session.ErrNotAdmin)
}

func TestGuardRejectsGarbageToken(t *testing.T) {
	s := session.New(filepath.Join(t.TempDir(), "session.yaml"), "not-a-jwt", "")
	assert.Error(t, s.Check(time.Now()))
}

func TestClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	s := session.New(path, signToken(t, session.AdminRole, time.Now().Add(time.Hour)), "")
	require.NoError(t, s.Save())

	require.NoError(t, s.Clear())
	loaded, err := session.Load(path)
	require.NoError(t, err)
	assert.False(t, loaded.Valid())

	// clearing twice is fine
	require.NoError(t, s.Clear())
}
