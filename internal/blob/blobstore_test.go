package blob

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type errorReader struct{}

func (errorReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestFilesystemRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewFilesystem(dir)
	if err != nil {
		t.Fatalf("new filesystem: %v", err)
	}
	if store.Driver() != DriverFilesystem {
		t.Fatalf("driver = %s", store.Driver())
	}

	payload := []byte("1 gallon Whole Milk - Fairlife\n")
	key := "exports/2025-01-02_07-30/shopping-list.txt"
	info, err := store.Put(ctx, key, bytes.NewReader(payload), PutOptions{
		ContentType: "text/plain; charset=utf-8",
		Metadata:    map[string]string{"format": "text"},
	})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if info.Key != key || info.Size != int64(len(payload)) {
		t.Fatalf("unexpected info %#v", info)
	}
	sum := sha256.Sum256(payload)
	if info.ETag != hex.EncodeToString(sum[:]) {
		t.Fatalf("etag = %q, want payload sha256", info.ETag)
	}
	if info.URL == "" {
		t.Fatalf("expected local url")
	}

	if _, err := store.Put(ctx, key, bytes.NewReader([]byte("other")), PutOptions{}); err == nil {
		t.Fatalf("expected duplicate put error")
	}

	got, rc, err := store.Get(ctx, key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	body, _ := io.ReadAll(rc)
	_ = rc.Close()
	if !bytes.Equal(body, payload) {
		t.Fatalf("payload mismatch: %q", body)
	}
	if got.ContentType != "text/plain; charset=utf-8" || got.Metadata["format"] != "text" {
		t.Fatalf("metadata lost: %#v", got)
	}

	if _, err := store.Head(ctx, key); err != nil {
		t.Fatalf("head: %v", err)
	}

	list, err := store.List(ctx, "exports/")
	if err != nil || len(list) != 1 || list[0].Key != key {
		t.Fatalf("list exports/: %v %+v", err, list)
	}
	if list, err := store.List(ctx, "backups/"); err != nil || len(list) != 0 {
		t.Fatalf("expected empty list for unmatched prefix, got %+v", list)
	}

	if url, err := store.PresignURL(ctx, key, SignedURLOptions{}); err != nil || url == "" {
		t.Fatalf("presign: %v %q", err, url)
	}
	if _, err := store.PresignURL(ctx, key, SignedURLOptions{Method: "PUT"}); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("presign PUT: %v", err)
	}

	if ok, err := store.Delete(ctx, key); err != nil || !ok {
		t.Fatalf("delete: %v %v", ok, err)
	}
	if ok, err := store.Delete(ctx, key); err != nil || ok {
		t.Fatalf("second delete should report missing")
	}
}

func TestFilesystemRejectsEscapingKeys(t *testing.T) {
	ctx := context.Background()
	store, err := NewFilesystem(t.TempDir())
	if err != nil {
		t.Fatalf("new filesystem: %v", err)
	}
	for _, key := range []string{"", "  ", "../outside.txt", "/etc/passwd", "a/../../b"} {
		if _, err := store.Put(ctx, key, bytes.NewReader([]byte("x")), PutOptions{}); err == nil {
			t.Fatalf("expected key %q to be rejected", key)
		}
	}
}

func TestFilesystemFailedPutLeavesNoObject(t *testing.T) {
	ctx := context.Background()
	store, err := NewFilesystem(t.TempDir())
	if err != nil {
		t.Fatalf("new filesystem: %v", err)
	}
	if _, err := store.Put(ctx, "backups/partial.json", errorReader{}, PutOptions{}); err == nil {
		t.Fatalf("expected copy error")
	}
	// A retry with the same key must succeed: the failed write may not leave
	// a data file behind.
	if _, err := store.Put(ctx, "backups/partial.json", bytes.NewReader([]byte("{}")), PutOptions{}); err != nil {
		t.Fatalf("retry after failed put: %v", err)
	}
}

func TestFilesystemMissingSidecarFailsReads(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewFilesystem(dir)
	if err != nil {
		t.Fatalf("new filesystem: %v", err)
	}
	if _, err := store.Put(ctx, "note.txt", bytes.NewReader([]byte("hi")), PutOptions{}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := os.Remove(filepath.Join(dir, "note.txt.meta")); err != nil {
		t.Fatalf("remove sidecar: %v", err)
	}
	if _, _, err := store.Get(ctx, "note.txt"); err == nil {
		t.Fatalf("expected get error without sidecar")
	}
	if _, err := store.Head(ctx, "note.txt"); err == nil {
		t.Fatalf("expected head error without sidecar")
	}
}

func TestMemoryStoreBehaviors(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	if store.Driver() != DriverMemory {
		t.Fatalf("driver = %s", store.Driver())
	}
	if _, _, err := store.Get(ctx, "missing"); err == nil {
		t.Fatalf("expected missing get error")
	}
	if _, err := store.Head(ctx, "missing"); err == nil {
		t.Fatalf("expected missing head error")
	}
	if ok, err := store.Delete(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected delete false on missing")
	}

	if _, err := store.Put(ctx, "k", bytes.NewReader([]byte("v")), PutOptions{Metadata: map[string]string{"a": "1"}}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := store.Put(ctx, "k", bytes.NewReader([]byte("v2")), PutOptions{}); err == nil {
		t.Fatalf("expected duplicate put error")
	}
	info, rc, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	body, _ := io.ReadAll(rc)
	_ = rc.Close()
	if string(body) != "v" || info.Size != 1 || info.Metadata["a"] != "1" {
		t.Fatalf("unexpected object: %#v %q", info, body)
	}
	if list, err := store.List(ctx, ""); err != nil || len(list) != 1 {
		t.Fatalf("list all: %v %d", err, len(list))
	}
	if list, err := store.List(ctx, "zzz"); err != nil || len(list) != 0 {
		t.Fatalf("list unmatched: %v %d", err, len(list))
	}
	if _, err := store.PresignURL(ctx, "k", SignedURLOptions{}); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected presign unsupported, got %v", err)
	}
}

func TestOpenSelectsDriverFromEnv(t *testing.T) {
	ctx := context.Background()

	t.Setenv("PANTRYCORE_BLOB_DRIVER", "")
	t.Setenv("PANTRYCORE_BLOB_FS_ROOT", t.TempDir())
	store, err := Open(ctx)
	if err != nil || store.Driver() != DriverFilesystem {
		t.Fatalf("default driver: %v %v", store, err)
	}

	t.Setenv("PANTRYCORE_BLOB_DRIVER", "memory")
	store, err = Open(ctx)
	if err != nil || store.Driver() != DriverMemory {
		t.Fatalf("memory driver: %v %v", store, err)
	}

	t.Setenv("PANTRYCORE_BLOB_DRIVER", "s3")
	t.Setenv("PANTRYCORE_BLOB_S3_BUCKET", "")
	if _, err := Open(ctx); err == nil {
		t.Fatalf("expected error for s3 without bucket")
	}

	t.Setenv("PANTRYCORE_BLOB_DRIVER", "drive")
	if _, err := Open(ctx); err == nil || !strings.Contains(err.Error(), "unknown blob driver") {
		t.Fatalf("expected unknown driver error, got %v", err)
	}
}
