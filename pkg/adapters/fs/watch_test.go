package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franciscovln/note-storage-app/pkg/adapters/fs"
	"github.com/franciscovln/note-storage-app/pkg/core"
)

// setupWatch initializes a repository and starts its watcher.
func setupWatch(t *testing.T) (*fs.Repository, string, <-chan []core.Note, context.Context, context.CancelFunc) {
	t.Helper()

	repo, dir := setupRepo(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)

	require.NoError(t, repo.Initialize(ctx))

	events, err := repo.Watch(ctx)
	require.NoError(t, err)
	require.NotNil(t, events)

	// Give the watcher a moment to attach before producing events.
	time.Sleep(100 * time.Millisecond)

	return repo, dir, events, ctx, cancel
}

// externalWrite simulates another context rewriting the store file.
func externalWrite(t *testing.T, dir string, notes []core.Note) {
	t.Helper()

	data, err := json.Marshal(notes)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, fs.DefaultFile), data, 0644))
}

func TestWatch_ExternalWrite(t *testing.T) {
	_, dir, events, ctx, cancel := setupWatch(t)
	defer cancel()

	want := sampleNotes()
	externalWrite(t, dir, want)

	select {
	case got := <-events:
		require.Len(t, got, 2)
		assert.Equal(t, "b", got[0].ID)
		assert.Equal(t, "a", got[1].ID)
	case <-ctx.Done():
		t.Fatal("timed out waiting for external change")
	}
}

func TestWatch_IgnoreSelf(t *testing.T) {
	repo, _, events, ctx, cancel := setupWatch(t)
	defer cancel()

	// A write via the repository itself must not come back on the channel:
	// reacting to our own persistence would loop forever in reactive apps.
	require.NoError(t, repo.Save(ctx, sampleNotes()))

	select {
	case got := <-events:
		t.Fatalf("own write surfaced as external change: %v", got)
	case <-time.After(700 * time.Millisecond):
	}
}

func TestWatch_ExternalWriteAfterSelfWrite(t *testing.T) {
	repo, dir, events, ctx, cancel := setupWatch(t)
	defer cancel()

	require.NoError(t, repo.Save(ctx, sampleNotes()))

	// An external context then empties the store. The self-write filter
	// must not swallow the foreign bytes.
	externalWrite(t, dir, []core.Note{})

	select {
	case got := <-events:
		assert.Empty(t, got)
	case <-ctx.Done():
		t.Fatal("timed out waiting for external change")
	}
}

func TestWatch_RemovedFileReadsAsEmpty(t *testing.T) {
	repo, dir, events, ctx, cancel := setupWatch(t)
	defer cancel()

	require.NoError(t, repo.Save(ctx, sampleNotes()))
	require.NoError(t, os.Remove(filepath.Join(dir, fs.DefaultFile)))

	select {
	case got := <-events:
		assert.Empty(t, got)
	case <-ctx.Done():
		t.Fatal("timed out waiting for removal")
	}
}

func TestWatch_IgnoresUnrelatedFiles(t *testing.T) {
	_, dir, events, _, cancel := setupWatch(t)
	defer cancel()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte("noise"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "draft.swp"), []byte("swap"), 0644))

	select {
	case got := <-events:
		t.Fatalf("unrelated file surfaced as store change: %v", got)
	case <-time.After(700 * time.Millisecond):
	}
}
