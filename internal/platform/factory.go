package platform

import (
	"context"
	"log/slog"

	"github.com/franciscovln/note-storage-app/pkg/adapters/fs"
	"github.com/franciscovln/note-storage-app/pkg/core"
)

// New wires a ready-to-use store rooted at dir: it builds the filesystem
// repository (unless one was injected), prepares the underlying storage and
// adopts the persisted collection as initial state.
func New(ctx context.Context, dir string, opts ...Option) (*core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	repo := o.repository
	if repo == nil {
		repo = fs.NewRepository(fs.Config{
			Dir:          dir,
			File:         o.file,
			MustExist:    o.mustExist,
			Logger:       logger,
			IgnoreGlobs:  o.ignoreGlobs,
			Debounce:     o.debounce,
			EventBuffer:  o.eventBuffer,
			ErrorHandler: o.errorHandler,
		})
	}

	if err := repo.Initialize(ctx); err != nil {
		return nil, err
	}

	storeOpts := []core.StoreOption{core.WithLogger(logger)}
	if o.clock != nil {
		storeOpts = append(storeOpts, core.WithClock(o.clock))
	}
	if o.idGenerator != nil {
		storeOpts = append(storeOpts, core.WithIDGenerator(o.idGenerator))
	}
	if o.notificationBuffer > 0 {
		storeOpts = append(storeOpts, core.WithNotificationBuffer(o.notificationBuffer))
	}

	store := core.NewStore(repo, storeOpts...)
	if err := store.Initialize(ctx); err != nil {
		return nil, err
	}

	return store, nil
}
