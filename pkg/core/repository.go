package core

import "context"

// Repository defines the contract for persisting the note collection.
// The collection is always written and read wholesale: the persisted
// representation is one ordered document, not per-note records, so writes
// are atomic at "replace whole collection" granularity. Adhering to this
// interface keeps the core independent of the underlying storage mechanism.
type Repository interface {
	// Load reads the persisted collection. Missing or malformed data yields
	// an empty collection, never an error; only I/O failures are reported.
	Load(ctx context.Context) ([]Note, error)

	// Save persists the collection, overwriting any prior value.
	Save(ctx context.Context, notes []Note) error

	// Initialize ensures the underlying storage is ready (e.g. create directories).
	Initialize(ctx context.Context) error
}

// Watcher is implemented by repositories that can detect writes made by
// other execution contexts sharing the same persisted store. The channel
// carries the newly persisted collection; writes originating from this
// context must not be delivered, so subscribers can replace local state
// without risking write/react feedback loops.
type Watcher interface {
	Watch(ctx context.Context) (<-chan []Note, error)
}
