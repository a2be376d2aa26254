package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "tasktracker"
	testSignKey = "test-sign-key"
)

func TestGenerateJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, "session-token-123", time.Hour, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := ValidateAndParseJWTToken(token, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, "session-token-123", subject)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		subject  string
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", subject: "sub", duration: time.Hour, signKey: "key"},
		{name: "empty subject", issuer: "iss", duration: time.Hour, signKey: "key"},
		{name: "zero duration", issuer: "iss", subject: "sub", signKey: "key"},
		{name: "empty sign key", issuer: "iss", subject: "sub", duration: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.subject, tt.duration, tt.signKey)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_WrongSignKey(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, "session-token-123", time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token, "different-key", testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, err := GenerateJWTToken("someone-else", "session-token-123", time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   "session-token-123",
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_RejectsUnsignedAlg(t *testing.T) {
	claims := &jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   "session-token-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_EmptySubject(t *testing.T) {
	claims := &jwt.RegisteredClaims{
		Issuer:    testIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.jwt", testSignKey, testIssuer)
	assert.Error(t, err)
}
