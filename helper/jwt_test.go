package helper

import (
	"testing"
	"time"

	"campus-rewards-system/config"
	"campus-rewards-system/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	config.Env.JWTSecret = "test-secret"
	config.Env.JWTExpiry = time.Hour
}

func TestTokenRoundTrip(t *testing.T) {
	user := &models.User{ID: "7ed99bd0-87b2-4dbb-a97b-596c3f29c49b", Role: models.RoleAdmin}

	token, err := GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	user := &models.User{ID: "abc", Role: models.RoleStudent}
	token, err := GenerateToken(user)
	require.NoError(t, err)

	config.Env.JWTSecret = "different-secret"
	defer func() { config.Env.JWTSecret = "test-secret" }()

	_, err = ValidateToken(token)
	assert.Error(t, err)
}
