package notestore

import (
	"context"
	"log/slog"
	"time"

	"github.com/franciscovln/note-storage-app/internal/platform"
	"github.com/franciscovln/note-storage-app/pkg/core"
)

// --- Types ---

// Note is a public alias for the domain note entity.
type Note = core.Note

// Store is a public alias for the note store.
type Store = core.Store

// UpdateFields is a public alias for the partial note patch.
type UpdateFields = core.UpdateFields

// Notification is a public alias for transient user-facing messages.
type Notification = core.Notification

// Level is a public alias for the notification severity.
type Level = core.Level

// --- Limits ---

const (
	MaxNotes         = core.MaxNotes
	MaxContentLength = core.MaxContentLength
	MaxTitleLength   = core.MaxTitleLength
	CreateCooldown   = core.CreateCooldown
	DefaultTitle     = core.DefaultTitle
)

// --- Errors ---

var (
	ErrThrottled        = core.ErrThrottled
	ErrCapacityExceeded = core.ErrCapacityExceeded
	ErrContentTooLong   = core.ErrContentTooLong
	ErrNotInitialized   = core.ErrNotInitialized
	ErrUnknownNote      = core.ErrUnknownNote
)

// --- Configuration ---

// Option defines a functional option for configuring the store.
type Option = platform.Option

// WithLogger sets the logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStoreFile sets the name of the persisted store file. Defaults to "notes.json".
func WithStoreFile(name string) Option {
	return platform.WithStoreFile(name)
}

// WithMustExist requires the store directory to already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithIgnoreGlobs replaces the watcher's ignore patterns.
func WithIgnoreGlobs(globs ...string) Option {
	return platform.WithIgnoreGlobs(globs...)
}

// WithDebounce sets the watcher's quiet window.
func WithDebounce(d time.Duration) Option {
	return platform.WithDebounce(d)
}

// WithEventBuffer sets the capacity of the watch channel.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithNotificationBuffer sets the capacity of the notification channel.
func WithNotificationBuffer(size int) Option {
	return platform.WithNotificationBuffer(size)
}

// WithClock overrides the time source (useful for testing the creation throttle).
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithIDGenerator overrides the note id generator.
func WithIDGenerator(fn func() string) Option {
	return platform.WithIDGenerator(fn)
}

// WithWatcherErrorHandler registers a callback for runtime watcher failures.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates a store rooted at dir, loading any persisted collection.
func New(ctx context.Context, dir string, opts ...Option) (*core.Store, error) {
	return platform.New(ctx, dir, opts...)
}
