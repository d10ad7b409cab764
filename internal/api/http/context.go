package http

import (
	"context"

	"feedbackhub-backend/internal/auth"
	"feedbackhub-backend/internal/domain"
)

type contextKey string

const (
	actorKey     contextKey = "actor"
	requestIDKey contextKey = "request_id"
)

// WithActor attaches the verified actor to the request context. The
// actor is always explicit; there is no process-wide current user.
func WithActor(ctx context.Context, actor auth.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFromContext extracts the actor set by the auth middleware.
func ActorFromContext(ctx context.Context) (auth.Actor, error) {
	actor, ok := ctx.Value(actorKey).(auth.Actor)
	if !ok {
		return auth.Actor{}, domain.ErrUnauthenticated
	}
	return actor, nil
}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the id tagged by the request middleware.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
