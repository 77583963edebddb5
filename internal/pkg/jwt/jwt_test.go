package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, "24h")

	token, expiresAt, err := svc.GenerateAccessToken(42, "anam", "employee")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Roughly 24 hours out.
	assert.InDelta(t, time.Now().Add(24*time.Hour).Unix(), expiresAt, 5)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)

	assert.Equal(t, float64(42), claims["user_id"])
	assert.Equal(t, "anam", claims["username"])
	assert.Equal(t, "employee", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateAccessToken_InvalidExpiration(t *testing.T) {
	svc := NewJWTService(testSecret, "not-a-duration")

	_, _, err := svc.GenerateAccessToken(1, "anam", "employee")
	assert.Error(t, err)
}

func TestTokenRevocation(t *testing.T) {
	svc := NewJWTService(testSecret, "24h")

	token, _, err := svc.GenerateAccessToken(1, "anam", "employee")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))

	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))

	// Other tokens stay valid.
	other, _, err := svc.GenerateAccessToken(2, "tien", "manager")
	require.NoError(t, err)
	assert.False(t, svc.IsTokenRevoked(other))
}

// Entries older than the token lifetime are swept on the next revocation,
// so the set cannot grow past one lifetime's worth of logouts.
func TestRevokeToken_SweepsExpiredEntries(t *testing.T) {
	svc := NewJWTService(testSecret, "1ms")

	svc.RevokeToken("stale-token")
	require.True(t, svc.IsTokenRevoked("stale-token"))

	time.Sleep(5 * time.Millisecond)
	svc.RevokeToken("fresh-token")

	assert.False(t, svc.IsTokenRevoked("stale-token"))
	assert.True(t, svc.IsTokenRevoked("fresh-token"))
}
