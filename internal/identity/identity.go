// Package identity carries the current owner identity through a context.
//
// The authentication boundary decides who the caller is; persistence only
// needs to know the owner id that scopes remote records, or that the caller
// is anonymous.
package identity

import (
	"context"
	"strings"
)

type contextKey string

const ownerKey contextKey = "owner_id"

// WithOwner returns a context carrying ownerID. A blank id leaves ctx anonymous.
func WithOwner(ctx context.Context, ownerID string) context.Context {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return ctx
	}
	return context.WithValue(ctx, ownerKey, ownerID)
}

// Owner returns the owner id, or "" and false for anonymous callers.
func Owner(ctx context.Context) (string, bool) {
	id, _ := ctx.Value(ownerKey).(string)
	return id, id != ""
}
