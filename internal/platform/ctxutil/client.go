package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type clientIDKey struct{}

// WithClientID stores the browser client id resolved from the identity cookie.
func WithClientID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, clientIDKey{}, id)
}

func GetClientID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(clientIDKey{}).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
