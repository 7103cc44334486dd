package audit

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger writes audit events to the structured log stream. With no
// database in this service the log pipeline is the system of record for
// who did what.
type Logger struct {
	log zerolog.Logger
}

func New() *Logger {
	return &Logger{
		log: log.With().Str("component", "audit").Logger(),
	}
}

func (l *Logger) Log(ev Event) {
	entry := l.log.Info().
		Str("action", ev.Action).
		Str("entity", ev.Entity).
		Str("entity_id", ev.EntityID)

	if ev.Actor != "" {
		entry = entry.Str("actor", ev.Actor)
	}
	if ev.Metadata != nil {
		entry = entry.Interface("metadata", ev.Metadata)
	}

	entry.Msg("audit")
}
