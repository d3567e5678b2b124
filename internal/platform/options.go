package platform

import (
	"log/slog"
	"time"

	"github.com/franciscovln/note-storage-app/pkg/core"
)

// options holds the internal configuration for the note service.
type options struct {
	repository         core.Repository
	logger             *slog.Logger
	file               string
	mustExist          bool
	ignoreGlobs        []string
	debounce           time.Duration
	eventBuffer        int
	notificationBuffer int
	clock              func() time.Time
	idGenerator        func() string
	errorHandler       func(error)
}

// Option defines a functional option for configuring the note service.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		file:        "notes.json",
		ignoreGlobs: []string{"*.swp", "*~"},
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStoreFile sets the name of the persisted store file inside the
// store directory. Defaults to "notes.json".
func WithStoreFile(name string) Option {
	return func(o *options) {
		if name != "" {
			o.file = name
		}
	}
}

// WithMustExist requires the store directory to already exist instead of
// creating it on initialization.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithRepository injects a custom storage adapter. If provided, the default
// filesystem adapter is skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithIgnoreGlobs replaces the watcher's ignore patterns (matched against
// event base names). The adapter's own temp files are always ignored.
func WithIgnoreGlobs(globs ...string) Option {
	return func(o *options) {
		o.ignoreGlobs = globs
	}
}

// WithDebounce sets the quiet window applied to filesystem events before
// the store file is re-read.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		o.debounce = d
	}
}

// WithEventBuffer sets the capacity of the watch channel.
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}

// WithNotificationBuffer sets the capacity of the user-facing notification channel.
func WithNotificationBuffer(size int) Option {
	return func(o *options) {
		o.notificationBuffer = size
	}
}

// WithClock overrides the service's time source. Useful for testing the
// creation throttle without waiting out the cooldown.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// WithIDGenerator overrides the note id generator.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		o.idGenerator = fn
	}
}

// WithWatcherErrorHandler registers a callback for errors occurring during
// the watch loop, which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}
