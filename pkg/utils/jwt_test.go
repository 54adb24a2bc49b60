package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-signing-key")

	accountID := uuid.New()
	token, err := CreateToken(accountID, "staff")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, accountID.String(), claims.UserID)
	assert.Equal(t, "staff", claims.Role)
}

// The signing key is read per call, not cached at package init, so a secret
// that only becomes available after startup (e.g. loaded from .env) is used.
func TestTokenSecretReadPerCall(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := CreateToken(uuid.New(), "staff")
	require.NoError(t, err)

	_, err = ValidateToken(token)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "rotated-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err, "token minted under the old secret must not verify")
}

func TestValidateToken_Garbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-signing-key")

	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}
