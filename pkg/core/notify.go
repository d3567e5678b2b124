package core

// Level represents the severity of a user-facing notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is a transient, user-facing message emitted by the store
// (throttle hit, capacity hit, deletion confirmed). View layers render
// these as toasts; stale ones may be dropped.
type Notification struct {
	Level   Level
	Message string
}
