package auth

import "context"

type contextKey string

const adminEmailKey contextKey = "admin_email"

// ContextWithAdmin stores the authenticated admin email on the context.
func ContextWithAdmin(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, adminEmailKey, email)
}

// AdminFromContext returns the authenticated admin email, or "" when the
// request did not pass the auth middleware.
func AdminFromContext(ctx context.Context) string {
	if email, ok := ctx.Value(adminEmailKey).(string); ok {
		return email
	}
	return ""
}
