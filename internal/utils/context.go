// Package utils holds the helpers shared by the server and client: context
// keys, HMAC hashing, HTTP response writing, and JWT handling.
package utils

import (
	"context"
)

// contextKey is unexported so no other package can collide with our keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is where the auth middleware stores the authenticated user's
// ID; handlers read it back with GetUserIDFromContext.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext returns the user ID from ctx. ok is false when the
// value is absent or not a string.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok
}
