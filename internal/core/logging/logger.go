// Package logging holds the zerolog helpers shared by notifbadge components.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a new logger with a component identifier.
// Uses the "cmp" key for consistency with zerolog conventions.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}

// WithHooks attaches ContextHook so events logged with Ctx pick up poll fields.
func WithHooks(l zerolog.Logger) zerolog.Logger {
	return l.Hook(ContextHook{})
}
