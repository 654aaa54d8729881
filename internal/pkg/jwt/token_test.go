package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kshitijrv/mingle/internal/pkg/models"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 168,
			Issuer:     "test-issuer",
		},
	}
}

func TestGenerateToken_RoundTrip(t *testing.T) {
	cfg := testConfig()
	userID := uuid.New()

	token, expiresAt, err := GenerateToken(userID, "user@example.com", cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// 7 day expiry
	expectedExpiry := time.Now().Add(168 * time.Hour).Unix()
	assert.InDelta(t, expectedExpiry, expiresAt, 5)

	claims, err := ValidateToken(token, cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.Expiration = -1 // already expired

	token, _, err := GenerateToken(uuid.New(), "user@example.com", cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(token, cfg.JWT.Secret)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testConfig()

	token, _, err := GenerateToken(uuid.New(), "user@example.com", cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(token, "other-secret")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateToken_Garbage(t *testing.T) {
	claims, err := ValidateToken("not-a-token", "test-secret")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
