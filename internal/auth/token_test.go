package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"provalab/internal/config"
)

func testConfig(expireMinutes int) *config.Config {
	return &config.Config{
		JWTSecret:        "unit-test-secret-unit-test-secret-12",
		JWTAlgorithm:     "HS256",
		JWTExpireMinutes: expireMinutes,
	}
}

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	tokens, err := NewTokenService(testConfig(60))
	require.NoError(t, err)

	userID := uuid.New()

	token, err := tokens.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	tokens, err := NewTokenService(testConfig(-1))
	require.NoError(t, err)

	token, err := tokens.Issue(uuid.New())
	require.NoError(t, err)

	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer, err := NewTokenService(testConfig(60))
	require.NoError(t, err)

	otherCfg := testConfig(60)
	otherCfg.JWTSecret = "a-completely-different-signing-secret"
	verifier, err := NewTokenService(otherCfg)
	require.NoError(t, err)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	tokens, err := NewTokenService(testConfig(60))
	require.NoError(t, err)

	for _, raw := range []string{"", "garbage", "not.a.jwt"} {
		_, err := tokens.Verify(raw)
		assert.ErrorIs(t, err, ErrTokenMalformed, "token %q", raw)
	}
}

func TestVerify_RejectsNoneAlgorithm(t *testing.T) {
	t.Parallel()

	tokens, err := NewTokenService(testConfig(60))
	require.NoError(t, err)

	claims := jwt.RegisteredClaims{
		Subject:   uuid.New().String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tokens.Verify(unsigned)
	assert.Error(t, err)
}

func TestVerify_SubjectNotUUID(t *testing.T) {
	t.Parallel()

	cfg := testConfig(60)
	tokens, err := NewTokenService(cfg)
	require.NoError(t, err)

	claims := jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestNewTokenService_RejectsNonHMAC(t *testing.T) {
	t.Parallel()

	for _, alg := range []string{"RS256", "ES256", "none", "bogus"} {
		cfg := testConfig(60)
		cfg.JWTAlgorithm = alg

		_, err := NewTokenService(cfg)
		assert.Error(t, err, "algorithm %q", alg)
	}
}

func TestNewTokenService_AcceptsHMACFamily(t *testing.T) {
	t.Parallel()

	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		cfg := testConfig(60)
		cfg.JWTAlgorithm = alg

		tokens, err := NewTokenService(cfg)
		require.NoError(t, err, "algorithm %q", alg)

		userID := uuid.New()
		token, err := tokens.Issue(userID)
		require.NoError(t, err)

		got, err := tokens.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, userID, got)
	}
}
