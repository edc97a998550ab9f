package ctxutil

import (
	"context"
)

type ctxKey string

const (
	userIDKey       ctxKey = "user_id"
	capabilitiesKey ctxKey = "capabilities"
	requestIDKey    ctxKey = "request_id"
)

// WithUserID stores the user ID in the context.
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns 0 and false if the value is missing, zero, or wrong type.
func UserIDFromCtx(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

// WithCapabilities stores the capability names granted to the current user.
func WithCapabilities(ctx context.Context, caps []string) context.Context {
	return context.WithValue(ctx, capabilitiesKey, caps)
}

// CapabilitiesFromCtx extracts the capability names from the context.
// Returns nil if absent.
func CapabilitiesFromCtx(ctx context.Context) []string {
	caps, _ := ctx.Value(capabilitiesKey).([]string)
	return caps
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
