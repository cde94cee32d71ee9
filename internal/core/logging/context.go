package logging

import "context"

type contextKey string

const (
	pollIDKey   contextKey = "poll_id"
	endpointKey contextKey = "endpoint"
)

// WithPollID tags the context with the sequence number of a poll cycle.
func WithPollID(ctx context.Context, id uint64) context.Context {
	return context.WithValue(ctx, pollIDKey, id)
}

// WithEndpoint adds the polled endpoint URL to the context.
func WithEndpoint(ctx context.Context, endpoint string) context.Context {
	return context.WithValue(ctx, endpointKey, endpoint)
}

// GetPollID retrieves the poll cycle id from the context.
// Returns false if not present.
func GetPollID(ctx context.Context) (uint64, bool) {
	id, ok := ctx.Value(pollIDKey).(uint64)
	return id, ok
}

// GetEndpoint retrieves the endpoint from the context.
// Returns empty string if not present.
func GetEndpoint(ctx context.Context) string {
	if ep, ok := ctx.Value(endpointKey).(string); ok {
		return ep
	}
	return ""
}
