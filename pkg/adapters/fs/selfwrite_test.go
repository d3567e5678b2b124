package fs

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/franciscovln/note-storage-app/pkg/core"
)

func TestIsSelfWrite(t *testing.T) {
	repo := NewRepository(Config{Dir: t.TempDir()})
	ctx := context.Background()

	if repo.isSelfWrite([]byte("[]")) {
		t.Error("nothing written yet, nothing can be a self write")
	}

	notes := []core.Note{{ID: "n1", Title: "Hello", CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC()}}
	if err := repo.Save(ctx, notes); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(repo.path())
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if !repo.isSelfWrite(data) {
		t.Error("the bytes this context just wrote must be recognized as a self write")
	}

	if repo.isSelfWrite([]byte(`[{"id":"other"}]`)) {
		t.Error("foreign bytes must not be mistaken for a self write")
	}
}

func TestDecode(t *testing.T) {
	repo := NewRepository(Config{Dir: t.TempDir()})

	if got := repo.decode(nil); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
	if got := repo.decode([]byte("not json")); got != nil {
		t.Errorf("expected nil for malformed input, got %v", got)
	}

	got := repo.decode([]byte(`[{"id":"x","title":"T","content":"","createdAt":"2026-08-29T10:00:00Z","updatedAt":"2026-08-29T10:00:00Z"}]`))
	if len(got) != 1 || got[0].ID != "x" {
		t.Errorf("unexpected decode result: %+v", got)
	}
}
