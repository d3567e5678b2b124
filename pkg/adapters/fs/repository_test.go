package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franciscovln/note-storage-app/pkg/adapters/fs"
	"github.com/franciscovln/note-storage-app/pkg/core"
)

// setupRepo helps create a repository for testing.
func setupRepo(t *testing.T, opts ...func(*fs.Config)) (*fs.Repository, string) {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "store")

	cfg := fs.Config{Dir: dir}
	for _, opt := range opts {
		opt(&cfg)
	}

	return fs.NewRepository(cfg), dir
}

func sampleNotes() []core.Note {
	created := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	return []core.Note{
		{ID: "b", Title: "Second", Content: "newer", CreatedAt: created.Add(time.Hour), UpdatedAt: created.Add(2 * time.Hour)},
		{ID: "a", Title: "First", Content: "older", CreatedAt: created, UpdatedAt: created},
	}
}

func TestInitialize(t *testing.T) {
	t.Run("Creates Directory If Missing", func(t *testing.T) {
		repo, dir := setupRepo(t)

		require.NoError(t, repo.Initialize(context.Background()))

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("Fails If MustExist And Missing", func(t *testing.T) {
		repo, _ := setupRepo(t, func(c *fs.Config) {
			c.MustExist = true
		})

		err := repo.Initialize(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing File Reads As Empty", func(t *testing.T) {
		repo, _ := setupRepo(t)
		require.NoError(t, repo.Initialize(ctx))

		notes, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, notes)
	})

	t.Run("Malformed File Reads As Empty", func(t *testing.T) {
		repo, dir := setupRepo(t)
		require.NoError(t, repo.Initialize(ctx))
		require.NoError(t, os.WriteFile(filepath.Join(dir, fs.DefaultFile), []byte("{not json"), 0644))

		notes, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, notes)
	})

	t.Run("Empty File Reads As Empty", func(t *testing.T) {
		repo, dir := setupRepo(t)
		require.NoError(t, repo.Initialize(ctx))
		require.NoError(t, os.WriteFile(filepath.Join(dir, fs.DefaultFile), nil, 0644))

		notes, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, notes)
	})
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupRepo(t)
	require.NoError(t, repo.Initialize(ctx))

	want := sampleNotes()
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(want))

	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID, "order must survive the round trip")
		assert.Equal(t, want[i].Title, got[i].Title)
		assert.Equal(t, want[i].Content, got[i].Content)
		assert.True(t, want[i].CreatedAt.Equal(got[i].CreatedAt))
		assert.True(t, want[i].UpdatedAt.Equal(got[i].UpdatedAt))
	}
}

func TestSave(t *testing.T) {
	ctx := context.Background()

	t.Run("Nil Collection Persists As Empty Array", func(t *testing.T) {
		repo, dir := setupRepo(t)
		require.NoError(t, repo.Initialize(ctx))
		require.NoError(t, repo.Save(ctx, nil))

		data, err := os.ReadFile(filepath.Join(dir, fs.DefaultFile))
		require.NoError(t, err)
		assert.Equal(t, "[]", strings.TrimSpace(string(data)))
	})

	t.Run("Leaves No Temp Files Behind", func(t *testing.T) {
		repo, dir := setupRepo(t)
		require.NoError(t, repo.Initialize(ctx))
		require.NoError(t, repo.Save(ctx, sampleNotes()))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, fs.DefaultFile, entries[0].Name())
	})

	t.Run("Overwrites Prior Value", func(t *testing.T) {
		repo, _ := setupRepo(t)
		require.NoError(t, repo.Initialize(ctx))
		require.NoError(t, repo.Save(ctx, sampleNotes()))
		require.NoError(t, repo.Save(ctx, sampleNotes()[:1]))

		got, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}
