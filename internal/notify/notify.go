// Package notify contains the production notification sink: store commands
// report their outcome here and the sink renders it as a structured log line.
package notify

import (
	"github.com/rs/zerolog"

	"github.com/skillhive/marketplace/internal/core/ports"
)

// LogNotifier writes notifications through zerolog. Severity maps to log
// level so error toasts are visible in aggregated logs.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(note ports.Notification) {
	evt := n.log.Info()
	if note.Severity == ports.SeverityError {
		evt = n.log.Error()
	}
	evt.
		Str("severity", string(note.Severity)).
		Str("title", note.Title).
		Msg(note.Description)
}
