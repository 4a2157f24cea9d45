// Package utils provides helpers shared by the taskflow server and client:
// typed context keys, JSON response writing, the resty HTTP client, and
// identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey holds the int64 id of the signed-in user.
	UserIDCtxKey = contextKey("userID")
	// LoginCtxKey holds the login of the signed-in user.
	LoginCtxKey = contextKey("login")
)

// WithSessionUser returns a copy of ctx carrying the user id and login of the
// authenticated session.
func WithSessionUser(ctx context.Context, userID int64, login string) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, LoginCtxKey, login)
}

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true: value is found and has the correct int64 type
//   - ok == false: value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetLoginFromContext retrieves the login stored by WithSessionUser.
func GetLoginFromContext(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(LoginCtxKey).(string)
	return login, ok
}
