package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

// Header is the HTTP header carrying the id on every outbound API call.
const Header = "X-Request-Id"

// Generate creates a new unique request ID
func Generate() string {
	return uuid.New().String()
}

// ToContext adds a request ID to the context
func ToContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// FromContext extracts the request ID from the context.
// Returns empty string if request ID is not found.
func FromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// OrNew returns the id carried by ctx, generating a fresh one when absent.
func OrNew(ctx context.Context) string {
	if id := FromContext(ctx); id != "" {
		return id
	}
	return Generate()
}

// Set stamps the request with the id from its context, generating one when
// the caller never attached any.
func Set(req *http.Request) {
	req.Header.Set(Header, OrNew(req.Context()))
}
