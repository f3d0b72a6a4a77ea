package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/fleet-dispatch/models"
)

var (
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")
	ErrEmptySubject       = errors.New("empty subject error")
	ErrInvalidBearerToken = errors.New("invalid authorization header")
)

const bearerScheme = "bearer"

var signingMethod = jwt.SigningMethodHS256

// GenerateJWTToken signs an HS256 token for userID. The subject claim holds
// the decimal user id; iat and exp are set from tokenDuration.
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(signingMethod, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken checks signature, algorithm, issuer and expiry of
// tokenString and extracts the user id from its subject.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(*jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{signingMethod.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if subject == "" {
		return models.Token{}, ErrEmptySubject
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("error converting subject to user id: %w", err)
	}

	parsed := models.Token{Token: token, SignedString: tokenString, UserID: userID}
	if claims, ok := token.Claims.(*models.Token); ok {
		parsed.RegisteredClaims = claims.RegisteredClaims
	}

	return parsed, nil
}

// ParseBearerToken extracts the token of an "Authorization: Bearer <token>"
// header. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, bearerScheme) || token == "" {
		return "", ErrInvalidBearerToken
	}
	return token, nil
}
