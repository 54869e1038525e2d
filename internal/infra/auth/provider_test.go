package auth_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/ai-solution/site-backend/internal/infra/auth"
	"github.com/stretchr/testify/require"
)

func testConfig() auth.Config {
	return auth.Config{
		JWTSecret:      "test-secret",
		TokenLifetime:  8 * time.Hour,
		OTPLifetime:    10 * time.Minute,
		OTPMaxAttempts: 5,
	}
}

func TestIssueTokenRoundTrip(t *testing.T) {
	provider := auth.NewIdentityProvider(testConfig())

	token, err := provider.IssueToken(42, "admin@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := provider.GetIdentity(token)
	require.NoError(t, err)
	require.Equal(t, int64(42), identity.AdminID)
	require.Equal(t, "admin@example.com", identity.Email)
}

func TestGetIdentityRejectsExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.TokenLifetime = -time.Minute
	provider := auth.NewIdentityProvider(cfg)

	token, err := provider.IssueToken(1, "admin@example.com")
	require.NoError(t, err)

	_, err = provider.GetIdentity(token)
	require.Error(t, err)
}

func TestGetIdentityRejectsWrongSecret(t *testing.T) {
	provider := auth.NewIdentityProvider(testConfig())
	token, err := provider.IssueToken(1, "admin@example.com")
	require.NoError(t, err)

	other := testConfig()
	other.JWTSecret = "different-secret"
	_, err = auth.NewIdentityProvider(other).GetIdentity(token)
	require.Error(t, err)
}

func TestGetIdentityRejectsGarbage(t *testing.T) {
	provider := auth.NewIdentityProvider(testConfig())
	_, err := provider.GetIdentity("not.a.jwt")
	require.Error(t, err)
}

func TestIssueTokenFailsWithoutSecret(t *testing.T) {
	cfg := testConfig()
	cfg.JWTSecret = ""
	_, err := auth.NewIdentityProvider(cfg).IssueToken(1, "admin@example.com")
	require.Error(t, err)
}

func TestGenerateOTPIsSixDigits(t *testing.T) {
	sixDigits := regexp.MustCompile(`^[0-9]{6}$`)
	for i := 0; i < 100; i++ {
		code, err := auth.GenerateOTP()
		require.NoError(t, err)
		require.Regexp(t, sixDigits, code)
	}
}
