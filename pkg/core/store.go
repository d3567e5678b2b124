package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/aretw0/lifecycle"
	"github.com/google/uuid"
)

// UpdateFields is a partial patch for a note. Nil fields are left untouched.
type UpdateFields struct {
	Title   *string
	Content *string
}

// Store owns the canonical note collection and its lifecycle: it loads
// persisted state once at startup, persists after every accepted mutation,
// enforces the business invariants (creation throttle, collection cap,
// content cap) and keeps the selection valid across all collection changes.
//
// All other components hold only note ids or copies; the slices returned by
// the read surface never alias internal state.
type Store struct {
	mu     sync.RWMutex
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
	newID  func() string

	notes       []Note
	selection   Selection
	lastCreate  time.Time
	initialized bool

	notifications chan Notification
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the logger for the store.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source. Useful for testing the creation throttle.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides the note id generator.
func WithIDGenerator(fn func() string) StoreOption {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithNotificationBuffer sets the capacity of the notification channel.
func WithNotificationBuffer(size int) StoreOption {
	return func(s *Store) {
		if size > 0 {
			s.notifications = make(chan Notification, size)
		}
	}
}

// NewStore creates a Store backed by the given repository.
func NewStore(repo Repository, opts ...StoreOption) *Store {
	s := &Store{
		repo:          repo,
		logger:        slog.Default(),
		now:           time.Now,
		newID:         uuid.NewString,
		notifications: make(chan Notification, 16),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize adopts the persisted collection as initial state. It runs at
// most once per store; repeated calls are no-ops. It never triggers a
// persistence write.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	notes, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load persisted notes: %w", err)
	}

	s.notes = notes
	s.selection.repair(s.notes)
	s.initialized = true
	s.logger.Debug("store initialized", "notes", len(notes), "selected", s.selection.ID())
	return nil
}

// Create constructs a new note, prepends it to the collection, persists and
// selects it, and returns its id. Creation is rejected with ErrThrottled
// within CreateCooldown of the last successful creation, and with
// ErrCapacityExceeded at the MaxNotes ceiling; both emit a user-facing
// notification and leave the collection unchanged.
func (s *Store) Create(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return "", ErrNotInitialized
	}

	now := s.now()
	if !s.lastCreate.IsZero() && now.Sub(s.lastCreate) < CreateCooldown {
		s.notify(LevelWarning, "Please wait before creating another note")
		return "", ErrThrottled
	}
	if len(s.notes) >= MaxNotes {
		s.notify(LevelWarning, fmt.Sprintf("Maximum of %d notes allowed", MaxNotes))
		return "", ErrCapacityExceeded
	}

	n := Note{
		ID:        s.newID(),
		Title:     DefaultTitle,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.notes = append([]Note{n}, s.notes...)
	s.lastCreate = now
	s.selection.set(n.ID)

	if err := s.persist(ctx); err != nil {
		return n.ID, err
	}
	s.logger.Debug("note created", "id", n.ID)
	return n.ID, nil
}

// Update applies a partial patch to the note matching id. Content longer
// than MaxContentLength is rejected with ErrContentTooLong and nothing is
// mutated. An unknown id is a silent no-op: the note may have been deleted
// in another context just before the edit arrived. Accepted changes reset
// UpdatedAt and are persisted.
func (s *Store) Update(ctx context.Context, id string, fields UpdateFields) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrNotInitialized
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}
	if fields.Title == nil && fields.Content == nil {
		return nil
	}
	if fields.Content != nil && utf8.RuneCountInString(*fields.Content) > MaxContentLength {
		return ErrContentTooLong
	}

	n := &s.notes[idx]
	if fields.Title != nil {
		n.Title = *fields.Title
	}
	if fields.Content != nil {
		n.Content = *fields.Content
	}
	n.UpdatedAt = s.now()

	return s.persist(ctx)
}

// Delete removes the note matching id, persists, and repairs the selection
// when the removed note was the selected one. An unknown id is a silent no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrNotInitialized
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}

	s.notes = append(s.notes[:idx], s.notes[idx+1:]...)
	if s.selection.ID() == id {
		s.selection.clear()
		s.selection.repair(s.notes)
	}
	s.notify(LevelError, "The note has been deleted")

	if err := s.persist(ctx); err != nil {
		return err
	}
	s.logger.Debug("note deleted", "id", id)
	return nil
}

// Replace adopts a collection persisted by another context wholesale
// (last write wins, no merge) and repairs the selection. It never writes
// back to the repository: the state it adopts is already persisted, and a
// write here could feed back into the change channel.
func (s *Store) Replace(notes []Note) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = append([]Note(nil), notes...)
	s.selection.repair(s.notes)
	s.logger.Debug("collection replaced from external write", "notes", len(s.notes), "selected", s.selection.ID())
}

// StartReconciler subscribes the store to externally-originated writes of
// the persisted collection, if the repository supports watching. Each
// delivered collection replaces local state until ctx is cancelled.
func (s *Store) StartReconciler(ctx context.Context) error {
	w, ok := s.repo.(Watcher)
	if !ok {
		return errors.New("repository does not support watching")
	}

	changes, err := w.Watch(ctx)
	if err != nil {
		return err
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case notes, ok := <-changes:
				if !ok {
					return nil
				}
				s.Replace(notes)
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		s.logger.Error("reconciler stopped", "error", err)
	}))

	return nil
}

// Select makes the note matching id the active one. Manual selection is
// accepted unconditionally provided the id exists in the current collection.
func (s *Store) Select(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(id) < 0 {
		return ErrUnknownNote
	}
	s.selection.set(id)
	return nil
}

// SelectedID returns the id of the active note, or "" when none is selected.
func (s *Store) SelectedID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection.ID()
}

// Selected returns the active note, if any.
func (s *Store) Selected() (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(s.selection.ID())
	if idx < 0 {
		return Note{}, false
	}
	return s.notes[idx], true
}

// Notes returns a copy of the current collection in display order
// (newest-created first).
func (s *Store) Notes() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Note(nil), s.notes...)
}

// Note returns the note matching id, if present.
func (s *Store) Note(id string) (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return Note{}, false
	}
	return s.notes[idx], true
}

// Len returns the current collection size.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

// Notifications exposes the transient user-facing message channel.
func (s *Store) Notifications() <-chan Notification {
	return s.notifications
}

func (s *Store) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.notes {
		if s.notes[i].ID == id {
			return i
		}
	}
	return -1
}

// persist writes the whole collection through the repository. On failure the
// in-memory mutation is kept: whole-document writes self-heal on the next
// successful persist.
func (s *Store) persist(ctx context.Context) error {
	if err := s.repo.Save(ctx, append([]Note(nil), s.notes...)); err != nil {
		s.logger.Error("persist failed", "error", err)
		return fmt.Errorf("persist notes: %w", err)
	}
	return nil
}

// notify emits a user-facing message without ever blocking a mutation.
// Stale toasts are dropped when no consumer keeps up.
func (s *Store) notify(level Level, msg string) {
	select {
	case s.notifications <- Notification{Level: level, Message: msg}:
	default:
		s.logger.Debug("notification dropped", "message", msg)
	}
}
