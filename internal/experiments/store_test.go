package experiments

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if _, found, _ := store.Get(ctx, "k"); found {
		t.Fatal("empty store reported a hit")
	}
	if err := store.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, found, err := store.Get(ctx, "k")
	if err != nil || !found || v != "v" {
		t.Fatalf("Get = %q found=%v err=%v", v, found, err)
	}
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found, _ := store.Get(ctx, "k"); found {
		t.Fatal("deleted key still present")
	}
}

func TestFileStorePersistsAcrossReopens(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "assignments.json")

	store := NewFileStore(path)
	if err := store.Set(ctx, "menuengine:exp:g1:price_format", "whole"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	reopened := NewFileStore(path)
	v, found, err := reopened.Get(ctx, "menuengine:exp:g1:price_format")
	if err != nil || !found || v != "whole" {
		t.Fatalf("reopened Get = %q found=%v err=%v", v, found, err)
	}

	if err := reopened.Delete(ctx, "menuengine:exp:g1:price_format"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found, _ := NewFileStore(path).Get(ctx, "menuengine:exp:g1:price_format"); found {
		t.Fatal("delete did not reach the file")
	}
}

func TestFileStoreTreatsCorruptFileAsEmpty(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "assignments.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	store := NewFileStore(path)
	if _, found, _ := store.Get(ctx, "any"); found {
		t.Fatal("corrupt file should read as empty")
	}
	if err := store.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set after corruption: %v", err)
	}
	if v, found, _ := NewFileStore(path).Get(ctx, "k"); !found || v != "v" {
		t.Fatalf("rewrite after corruption failed, got %q found=%v", v, found)
	}
}

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "missing.json"))
	if _, found, _ := store.Get(context.Background(), "k"); found {
		t.Fatal("missing file should read as empty")
	}
}
