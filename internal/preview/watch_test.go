package preview

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")
	if err := os.WriteFile(path, []byte("name = \"a\"\n"), 0o644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := Watch(ctx, path)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	if err := os.WriteFile(path, []byte("name = \"b\"\n"), 0o644); err != nil {
		t.Fatalf("failed to rewrite file: %v", err)
	}

	select {
	case _, ok := <-changes:
		if !ok {
			t.Fatal("change channel closed before delivering an event")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}
}

func TestWatchIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")
	if err := os.WriteFile(path, []byte("name = \"a\"\n"), 0o644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := Watch(ctx, path)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	other := filepath.Join(dir, "other.toml")
	if err := os.WriteFile(other, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatalf("failed to write sibling: %v", err)
	}

	select {
	case <-changes:
		t.Fatal("received a notification for an unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}
