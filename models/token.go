package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is an issued or parsed access token of a driver or dispatcher.
// Only the signed string ever leaves the server.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	// SignedString is the compact header.payload.signature form.
	SignedString string `json:"-"`

	// UserID is the decoded subject claim.
	UserID int64 `json:"-"`
}

// GetUserID returns UserID when it is set and decodes the subject claim
// otherwise.
func (t *Token) GetUserID() (int64, error) {
	if t.UserID != 0 {
		return t.UserID, nil
	}

	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting user id from token: %w", err)
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("token subject %q is not a user id: %w", subject, err)
	}

	return userID, nil
}

func (t *Token) String() string {
	return t.SignedString
}
