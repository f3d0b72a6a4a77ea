package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer = "fleet-dispatch"
	testKey    = "secret-key"
)

func TestGenerateJWTToken(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 123, time.Hour, testKey)

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, token.SignedString, token.String())
	assert.Equal(t, int64(123), token.UserID)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{name: "no issuer", duration: time.Hour, key: testKey},
		{name: "no duration", issuer: testIssuer, key: testKey},
		{name: "no key", issuer: testIssuer, duration: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			assert.ErrorIs(t, err, ErrInvalidTokenParams)
		})
	}
}

func TestValidateAndParseJWTToken(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, 456, 5*time.Minute, testKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, testKey, testIssuer)

	require.NoError(t, err)
	assert.Equal(t, int64(456), parsed.UserID)
	userID, err := parsed.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(456), userID)
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, err := GenerateJWTToken(testIssuer, 1, time.Hour, testKey)
	require.NoError(t, err)
	expired, err := GenerateJWTToken(testIssuer, 1, -time.Second, testKey)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testKey))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:  testIssuer,
		Subject: "1",
	}).SignedString([]byte(testKey))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{name: "wrong key", token: valid.SignedString, key: "other", issuer: testIssuer},
		{name: "wrong issuer", token: valid.SignedString, key: testKey, issuer: "other"},
		{name: "expired", token: expired.SignedString, key: testKey, issuer: testIssuer},
		{name: "other algorithm", token: hs512, key: testKey, issuer: testIssuer},
		{name: "no expiry", token: noExpiry, key: testKey, issuer: testIssuer},
		{name: "malformed", token: "not.a.token", key: testKey, issuer: testIssuer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			assert.Error(t, err)
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "Bearer", wantErr: true},
		{header: "Bearer ", wantErr: true},
		{header: "Basic abc", wantErr: true},
		{header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBearerToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
