// Package notestore is the Composition Root for the note storage application.
//
// It connects the core business logic (Domain Layer) with the infrastructure
// adapter (Persistence Layer) using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// notestore treats a small personal note collection as a single local
// document: the whole collection lives in one JSON file, every mutation
// rewrites it atomically, and concurrently running processes sharing the
// file converge through change notifications (last write wins).
//
// Features:
//
//   - **Hexagonal Architecture**: core domain is isolated from persistence details.
//   - **Atomic persistence**: temp-file + rename writes, no partial states.
//   - **Cross-context reconciliation**: a filesystem watcher replaces local
//     state when another process rewrites the store, without write-back loops.
//   - **Business invariants**: 10-note cap, 2s creation throttle, 5000-rune
//     content cap, selection always valid.
//   - **Extensible**: alternative backends via core.Repository.
//
// Usage:
//
//	// Initialize the store with functional options
//	store, err := notestore.New(ctx, "./notes",
//		notestore.WithLogger(logger),
//	)
//
//	// Create and edit a note
//	id, err := store.Create(ctx)
//	title := "Groceries"
//	err = store.Update(ctx, id, notestore.UpdateFields{Title: &title})
package notestore
