package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID   ctxKey = "user_id"
	CtxKeyUsername ctxKey = "username"
)

// UserIDFromContext returns the authenticated user's id, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(CtxKeyUserID).(string)
	return v, ok && v != ""
}

// WithUser stores the authenticated identity for downstream handlers.
func WithUser(ctx context.Context, userID, username string) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, userID)
	return context.WithValue(ctx, CtxKeyUsername, username)
}
