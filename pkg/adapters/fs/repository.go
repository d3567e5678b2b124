// Package fs persists the note collection as a single JSON document on the
// local filesystem and detects writes made by other processes sharing it.
package fs

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/franciscovln/note-storage-app/pkg/core"
)

// DefaultFile is the store file name used when Config.File is empty.
const DefaultFile = "notes.json"

// Config holds the configuration for the filesystem repository.
type Config struct {
	Dir       string // directory holding the store file
	File      string // store file name, defaults to DefaultFile
	MustExist bool   // require Dir to already exist instead of creating it
	Logger    *slog.Logger

	// IgnoreGlobs are extra base-name patterns the watcher discards
	// (editor swap files and the like). The adapter's own temp files are
	// always ignored.
	IgnoreGlobs []string

	// Debounce is the quiet window applied to filesystem events before the
	// store file is re-read. Zero means the default (50ms).
	Debounce time.Duration

	// EventBuffer is the capacity of the watch channel. Zero means 16.
	EventBuffer int

	// ErrorHandler, if set, receives runtime watcher failures which are
	// otherwise only logged.
	ErrorHandler func(error)
}

// Repository implements core.Repository on one JSON file holding the whole
// collection. It also implements core.Watcher: a filesystem watcher on the
// parent directory surfaces the atomic rename writes of other contexts,
// while this context's own writes are recognized by content fingerprint and
// suppressed.
type Repository struct {
	config Config

	mu            sync.RWMutex // guards lastWrite and watcher state
	lastWrite     [sha256.Size]byte // fingerprint of the bytes this context last wrote
	hasWritten    bool
	watcherActive bool
	lastReconcile *time.Time
}

var (
	_ core.Repository = (*Repository)(nil)
	_ core.Watcher    = (*Repository)(nil)
)

// NewRepository creates a filesystem-backed repository.
func NewRepository(config Config) *Repository {
	if config.File == "" {
		config.File = DefaultFile
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Debounce <= 0 {
		config.Debounce = 50 * time.Millisecond
	}
	if config.EventBuffer <= 0 {
		config.EventBuffer = 16
	}
	return &Repository{config: config}
}

// Initialize ensures the store directory exists (or, with MustExist,
// verifies it does). A missing store file is valid: it reads as an empty
// collection and is only created on the first write.
func (r *Repository) Initialize(ctx context.Context) error {
	if r.config.MustExist {
		info, err := os.Stat(r.config.Dir)
		if os.IsNotExist(err) {
			return fmt.Errorf("store path does not exist: %s", r.config.Dir)
		}
		if err != nil {
			return fmt.Errorf("failed to stat store path: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("store path is not a directory: %s", r.config.Dir)
		}
		return nil
	}

	if err := os.MkdirAll(r.config.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	return nil
}

// Load reads the persisted collection. A missing file or malformed content
// is treated as no data: the collection starts empty rather than failing.
func (r *Repository) Load(ctx context.Context) ([]core.Note, error) {
	data, err := os.ReadFile(r.path())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}
	return r.decode(data), nil
}

// Save serializes the collection and writes it atomically, overwriting any
// prior value. The written bytes are fingerprinted before the rename lands
// so the watcher can discard the resulting same-context event.
func (r *Repository) Save(ctx context.Context, notes []core.Note) error {
	if notes == nil {
		notes = []core.Note{}
	}

	data, err := json.MarshalIndent(notes, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize notes: %w", err)
	}

	r.mu.Lock()
	r.lastWrite = sha256.Sum256(data)
	r.hasWritten = true
	r.mu.Unlock()

	if err := writeFileAtomic(r.path(), data, 0644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	return nil
}

// Watch starts a filesystem watcher delivering collections persisted by
// other contexts. The worker stops when ctx is cancelled.
func (r *Repository) Watch(ctx context.Context) (<-chan []core.Note, error) {
	events := make(chan []core.Note, r.config.EventBuffer)
	w := newWatchWorker(r, events)
	if err := w.Start(ctx); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *Repository) path() string {
	return filepath.Join(r.config.Dir, r.config.File)
}

// decode parses persisted bytes. Empty or unparseable content yields an
// empty collection; corruption self-heals on the next write.
func (r *Repository) decode(data []byte) []core.Note {
	if len(data) == 0 {
		return nil
	}
	var notes []core.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		r.config.Logger.Warn("malformed store file, treating as empty", "path", r.path(), "error", err)
		return nil
	}
	return notes
}

// isSelfWrite reports whether data matches the bytes this context last wrote.
func (r *Repository) isSelfWrite(data []byte) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hasWritten && r.lastWrite == sha256.Sum256(data)
}

func (r *Repository) reportError(err error) {
	r.config.Logger.Error("watcher error", "error", err)
	if r.config.ErrorHandler != nil {
		r.config.ErrorHandler(err)
	}
}
