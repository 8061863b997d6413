package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "bwordible.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestGetMissingKey(t *testing.T) {
	st := openTestStore(t)
	value, ok, err := st.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok || value != "" {
		t.Fatalf("expected no document, got %q", value)
	}
}

func TestPutReplacesDocument(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	if err := st.Put(ctx, "state", `{"a":1}`); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := st.Put(ctx, "state", `{"a":2}`); err != nil {
		t.Fatalf("put again: %v", err)
	}
	value, ok, err := st.Get(ctx, "state")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || value != `{"a":2}` {
		t.Fatalf("unexpected document %q (ok=%v)", value, ok)
	}
}

func TestReopenKeepsDocuments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bwordible.db")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := st.Put(context.Background(), "k", "v"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	st, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() {
		_ = st.Close()
	}()
	value, ok, err := st.Get(context.Background(), "k")
	if err != nil || !ok || value != "v" {
		t.Fatalf("expected persisted value, got %q ok=%v err=%v", value, ok, err)
	}
}
