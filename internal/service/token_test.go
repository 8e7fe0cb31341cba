package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devconnect/backend/internal/service"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := service.NewTokenService("test-secret", time.Hour)
	userID := uuid.New()

	token, err := tokens.Generate(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenWrongSecret(t *testing.T) {
	tokens := service.NewTokenService("test-secret", time.Hour)
	other := service.NewTokenService("other-secret", time.Hour)

	token, err := tokens.Generate(uuid.New())
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestTokenExpired(t *testing.T) {
	tokens := service.NewTokenService("test-secret", -time.Minute)

	token, err := tokens.Generate(uuid.New())
	require.NoError(t, err)

	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestTokenGarbage(t *testing.T) {
	tokens := service.NewTokenService("test-secret", time.Hour)

	_, err := tokens.Verify("not-a-token")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}
