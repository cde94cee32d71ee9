package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook extracts poll_id and endpoint from context and adds them to log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if id, ok := GetPollID(ctx); ok {
		e.Uint64("poll_id", id)
	}

	if endpoint := GetEndpoint(ctx); endpoint != "" {
		e.Str("endpoint", endpoint)
	}
}
