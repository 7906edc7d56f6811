package models

import "time"

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Notification is a transient UI message. A non-positive Duration means it
// stays until removed explicitly.
type Notification struct {
	ID       int64         `json:"id"`
	Message  string        `json:"message"`
	Severity Severity      `json:"type"`
	Duration time.Duration `json:"duration"`
}
