// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// session token generation, and other common operations.
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

// SessionUserCtxKey is the key used to store the authenticated username in
// the context. Used together with GetSessionUserFromContext for type-safe
// retrieval of the session identity from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.SessionUserCtxKey, "alice")
var SessionUserCtxKey = contextKey("sessionUser")

// GetSessionUserFromContext retrieves the authenticated username from the
// context.
//
// Returns the username and an ok flag:
//   - ok == true  — a session identity is established for this request
//   - ok == false — the request is anonymous (or the value has a wrong type)
func GetSessionUserFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(SessionUserCtxKey).(string)
	if username == "" {
		return "", false
	}
	return username, ok
}

// WithSessionUser returns a child context carrying the authenticated
// username. It is the write-side counterpart of GetSessionUserFromContext.
func WithSessionUser(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, SessionUserCtxKey, username)
}
