package ports

// Severity classifies a notification for the sink that renders it.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is the fire-and-forget payload every store command emits on
// completion, success or failure.
type Notification struct {
	Title       string
	Description string
	Severity    Severity
}

// Notifier is the notification sink. Implementations must not block and
// must never return control-flow-relevant errors to the caller.
type Notifier interface {
	Notify(n Notification)
}
