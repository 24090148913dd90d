package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashSecret_VerifiesAndSalts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	h1, err := f.creds.HashSecret(ctx, "p@ss")
	require.NoError(t, err)
	h2, err := f.creds.HashSecret(ctx, "p@ss")
	require.NoError(t, err)

	assert.NotEqual(t, "p@ss", h1)
	assert.NotEqual(t, h1, h2)
	assert.True(t, f.creds.Hasher.CompareHashAndPassword(h1, "p@ss"))
	assert.True(t, f.creds.Hasher.CompareHashAndPassword(h2, "p@ss"))
	assert.False(t, f.creds.Hasher.CompareHashAndPassword(h1, "p@sS"))
}

func TestHashSecret_Failures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.creds.HashSecret(ctx, "")
	assert.ErrorIs(t, err, ErrHashingFailure)

	_, err = f.creds.HashSecret(ctx, strings.Repeat("x", 100))
	assert.ErrorIs(t, err, ErrHashingFailure)
	assert.Equal(t, ErrHashingFailure.Error(), err.Error(), "no bcrypt detail leaks")
}

func TestAuthenticate_EndToEnd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.createUser(t, "alice", "correct-secret")

	res, err := f.creds.Authenticate(ctx, "alice", "correct-secret")
	require.NoError(t, err)
	assert.Equal(t, "Login successful", res.Message)
	assert.NotEmpty(t, res.Token)

	claims, err := f.jwt.ParseToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, alice.ID, claims.UserID)

	_, wrongErr := f.creds.Authenticate(ctx, "alice", "wrong")
	_, unknownErr := f.creds.Authenticate(ctx, "bob", "anything")
	assert.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.Equal(t, wrongErr, unknownErr)
}

func TestAuthenticate_TokenExpiresAfterTTL(t *testing.T) {
	f := newFixture(t)
	issued := time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)
	f.jwt.Now = func() time.Time { return issued }
	f.createUser(t, "alice", "correct-secret")

	res, err := f.creds.Authenticate(context.Background(), "alice", "correct-secret")
	require.NoError(t, err)

	_, err = f.jwt.ParseToken(res.Token)
	assert.NoError(t, err)

	f.jwt.Now = func() time.Time { return issued.Add(time.Hour + time.Second) }
	_, err = f.jwt.ParseToken(res.Token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestAuthenticate_DirectoryUnavailable(t *testing.T) {
	f := newFixture(t)
	f.repo.getErr = errors.New("connection refused")

	_, err := f.creds.Authenticate(context.Background(), "alice", "correct-secret")
	assert.ErrorIs(t, err, ErrDirectoryUnavailable)
	assert.NotContains(t, err.Error(), "connection refused")
}

func TestAuthenticate_InactiveUserStillLogsIn(t *testing.T) {
	f := newFixture(t)
	_, err := f.users.Create(context.Background(), CreateUserInput{Username: "carol", Password: "pw", IsActive: false})
	require.NoError(t, err)

	res, err := f.creds.Authenticate(context.Background(), "carol", "pw")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
}

func TestAuthenticate_UnknownUserRunsDummyCompare(t *testing.T) {
	f := newFixture(t)
	f.createUser(t, "alice", "correct-secret")

	_, err := f.creds.Authenticate(context.Background(), "bob", "anything")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, 1, f.hasher.dummies)
	assert.Zero(t, f.hasher.compares)
	assert.Zero(t, f.hasher.emptyCompares)
}

func TestAuthenticate_KnownUserSkipsDummyCompare(t *testing.T) {
	f := newFixture(t)
	f.createUser(t, "alice", "correct-secret")

	_, err := f.creds.Authenticate(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, 1, f.hasher.compares)
	assert.Zero(t, f.hasher.dummies)

	_, err = f.creds.Authenticate(context.Background(), "alice", "correct-secret")
	require.NoError(t, err)
	assert.Equal(t, 2, f.hasher.compares)
	assert.Zero(t, f.hasher.dummies)
}

func TestAuthenticate_DirectoryErrorSkipsCompare(t *testing.T) {
	f := newFixture(t)
	f.repo.getErr = errors.New("connection refused")

	_, err := f.creds.Authenticate(context.Background(), "alice", "pw")
	assert.ErrorIs(t, err, ErrDirectoryUnavailable)
	assert.Zero(t, f.hasher.dummies)
	assert.Zero(t, f.hasher.compares)
}
