// Package utils holds small helpers shared by the transport and service
// layers: the authenticated user in a context, JSON responses, JWT tokens and
// identifier generation.
package utils

import (
	"context"
)

// contextKey keeps this package's context keys apart from plain strings.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey holds the id of the authenticated user, an int64.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext returns the id stored under [UserIDCtxKey]. ok is false
// when the value is missing or not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
