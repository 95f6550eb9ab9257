package kv_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/revisor-lab/revisor/pkg/domain/interfaces"
	"github.com/revisor-lab/revisor/pkg/kv"
	"github.com/revisor-lab/revisor/pkg/kv/fs"
	"github.com/revisor-lab/revisor/pkg/kv/memory"
)

func runBackendTest(t *testing.T, newBackend func(t *testing.T) interfaces.Backend) {
	t.Helper()

	t.Run("Get returns ErrKeyNotFound for missing key", func(t *testing.T) {
		b := newBackend(t)
		ctx := context.Background()

		_, err := b.Get(ctx, "missing")
		if err == nil {
			t.Fatal("expected error for missing key")
		}
		if !errors.Is(err, kv.ErrKeyNotFound) {
			t.Errorf("expected ErrKeyNotFound, got %v", err)
		}
	})

	t.Run("Put then Get round-trips the blob", func(t *testing.T) {
		b := newBackend(t)
		ctx := context.Background()

		blob := []byte(`[{"id":1,"name":"Security"}]`)
		if err := b.Put(ctx, "audit_types_data", blob); err != nil {
			t.Fatalf("failed to put blob: %v", err)
		}

		got, err := b.Get(ctx, "audit_types_data")
		if err != nil {
			t.Fatalf("failed to get blob: %v", err)
		}
		if !bytes.Equal(got, blob) {
			t.Errorf("expected %q, got %q", blob, got)
		}
	})

	t.Run("Put overwrites an existing blob", func(t *testing.T) {
		b := newBackend(t)
		ctx := context.Background()

		if err := b.Put(ctx, "k", []byte("one")); err != nil {
			t.Fatalf("failed to put first blob: %v", err)
		}
		if err := b.Put(ctx, "k", []byte("two")); err != nil {
			t.Fatalf("failed to put second blob: %v", err)
		}

		got, err := b.Get(ctx, "k")
		if err != nil {
			t.Fatalf("failed to get blob: %v", err)
		}
		if string(got) != "two" {
			t.Errorf("expected overwritten value, got %q", got)
		}
	})

	t.Run("Delete removes the blob", func(t *testing.T) {
		b := newBackend(t)
		ctx := context.Background()

		if err := b.Put(ctx, "k", []byte("v")); err != nil {
			t.Fatalf("failed to put blob: %v", err)
		}
		if err := b.Delete(ctx, "k"); err != nil {
			t.Fatalf("failed to delete blob: %v", err)
		}

		if _, err := b.Get(ctx, "k"); !errors.Is(err, kv.ErrKeyNotFound) {
			t.Errorf("expected ErrKeyNotFound after delete, got %v", err)
		}
	})

	t.Run("Delete of a missing key is not an error", func(t *testing.T) {
		b := newBackend(t)
		ctx := context.Background()

		if err := b.Delete(ctx, "never-stored"); err != nil {
			t.Errorf("expected nil error, got %v", err)
		}
	})

	t.Run("Put with empty key fails", func(t *testing.T) {
		b := newBackend(t)
		ctx := context.Background()

		if err := b.Put(ctx, "", []byte("v")); err == nil {
			t.Error("expected error for empty key")
		}
	})
}

func TestMemoryBackend(t *testing.T) {
	runBackendTest(t, func(t *testing.T) interfaces.Backend {
		return memory.New()
	})
}

func TestFSBackend(t *testing.T) {
	runBackendTest(t, func(t *testing.T) interfaces.Backend {
		b, err := fs.New(t.TempDir())
		if err != nil {
			t.Fatalf("failed to create fs backend: %v", err)
		}
		return b
	})
}

func TestMemoryBackendCopiesValues(t *testing.T) {
	b := memory.New()
	ctx := context.Background()

	blob := []byte("original")
	if err := b.Put(ctx, "k", blob); err != nil {
		t.Fatalf("failed to put blob: %v", err)
	}
	blob[0] = 'X'

	got, err := b.Get(ctx, "k")
	if err != nil {
		t.Fatalf("failed to get blob: %v", err)
	}
	if string(got) != "original" {
		t.Errorf("backend shared caller's buffer: %q", got)
	}

	got[0] = 'Y'
	again, err := b.Get(ctx, "k")
	if err != nil {
		t.Fatalf("failed to get blob: %v", err)
	}
	if string(again) != "original" {
		t.Errorf("backend returned shared buffer: %q", again)
	}
}

func TestFSBackendRejectsTraversalKeys(t *testing.T) {
	b, err := fs.New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create fs backend: %v", err)
	}
	ctx := context.Background()

	for _, key := range []string{"../escape", "/absolute", "  ", "a/../../b"} {
		if err := b.Put(ctx, key, []byte("v")); err == nil {
			t.Errorf("expected error for key %q", key)
		}
	}
}
