package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func init() {
	SetJWTSecret("test-secret-key-for-testing")
}

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken("user@example.com", "USER", 24*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, 3, len(strings.Split(token, ".")))
}

func TestParseToken_RoundTrip(t *testing.T) {
	token, err := GenerateToken("admin@example.com", "ADMIN", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, "admin@example.com", claims.Subject)
	require.Equal(t, "ADMIN", claims.Role)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken("user@example.com", "USER", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token)
	require.Error(t, err)
}

func TestParseToken_TamperedSignature(t *testing.T) {
	token, err := GenerateToken("user@example.com", "USER", time.Hour)
	require.NoError(t, err)

	// Flip a byte of the signature segment
	tampered := token[:len(token)-2] + "xx"
	_, err = ParseToken(tampered)
	require.Error(t, err)
}

func TestParseToken_WrongSecret(t *testing.T) {
	SetJWTSecret("original-secret")
	token, err := GenerateToken("user@example.com", "USER", time.Hour)
	require.NoError(t, err)

	SetJWTSecret("different-secret")
	_, err = ParseToken(token)

	SetJWTSecret("test-secret-key-for-testing")
	require.Error(t, err)
}

func TestParseToken_Malformed(t *testing.T) {
	for _, token := range []string{"", "invalid", "not.a.token"} {
		_, err := ParseToken(token)
		require.Error(t, err, "ParseToken(%q) should fail", token)
	}
}

func TestGenerateToken_Expiration(t *testing.T) {
	token, err := GenerateToken("user@example.com", "USER", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)

	diff := claims.ExpiresAt.Time.Sub(time.Now().Add(time.Hour))
	require.Less(t, diff.Abs(), time.Minute)
}
