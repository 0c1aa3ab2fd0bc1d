// Package notify provides Notifier implementations. The log-backed notifier
// stands in when no mail transport is configured; it records the send so
// delivery remains observable in every environment.
package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/OpeyemiAdeniji/fatouapi/internal/core/ports"
)

type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Send(_ context.Context, msg ports.Notification) error {
	n.log.Info().
		Str("template", msg.TemplateID).
		Str("recipient", msg.Recipient).
		Msg("notification dispatched")
	return nil
}
