package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "movie-keeper-test"
	testSignKey = "test-sign-key"
)

func TestGenerateJWTToken(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, "user-1", "bob@example.com", time.Hour, testSignKey)
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, "user-1", token.UserID)
	assert.Equal(t, "bob@example.com", token.Email)
	assert.Equal(t, testIssuer, token.Issuer)
	require.NotNil(t, token.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt.Time, time.Minute)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   string
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", userID: "user-1", duration: time.Hour, signKey: testSignKey},
		{name: "empty user id", issuer: testIssuer, duration: time.Hour, signKey: testSignKey},
		{name: "zero duration", issuer: testIssuer, userID: "user-1", signKey: testSignKey},
		{name: "empty sign key", issuer: testIssuer, userID: "user-1", duration: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, "bob@example.com", tt.duration, tt.signKey)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, "user-1", "bob@example.com", time.Hour, testSignKey)
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		parsed, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
		require.NoError(t, err)
		assert.Equal(t, "user-1", parsed.UserID)
		assert.Equal(t, "bob@example.com", parsed.Email)
	})

	t.Run("wrong sign key", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(issued.SignedString, "wrong-key", testIssuer)
		assert.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, "someone-else")
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := GenerateJWTToken(testIssuer, "user-1", "bob@example.com", -time.Minute, testSignKey)
		require.NoError(t, err)

		_, err = ValidateAndParseJWTToken(expired.SignedString, testSignKey, testIssuer)
		assert.Error(t, err)
	})

	t.Run("garbage string", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken("definitely.not.jwt", testSignKey, testIssuer)
		assert.Error(t, err)
	})
}
