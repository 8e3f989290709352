package file

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

/*
TestLocalOpen covers the happy path, missing files, directory rejection, and
pre-canceled contexts.
*/
func TestLocalOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.csv")
	if err := os.WriteFile(path, []byte("name,age\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	ctx := context.Background()

	rc, err := NewLocal(path).Open(ctx)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	b, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "name,age\n" {
		t.Fatalf("content=%q; want %q", b, "name,age\n")
	}
	if err := rc.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if _, err := NewLocal(filepath.Join(dir, "missing.csv")).Open(ctx); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err=%v; want os.ErrNotExist", err)
	}

	if _, err := NewLocal(dir).Open(ctx); err == nil {
		t.Fatalf("directory open: err=nil; want error")
	}

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := NewLocal(path).Open(canceled); !errors.Is(err, context.Canceled) {
		t.Fatalf("canceled ctx err=%v; want context.Canceled", err)
	}
}
