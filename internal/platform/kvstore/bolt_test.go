package kvstore

import (
	"errors"
	"path/filepath"
	"testing"

	bolt "go.etcd.io/bbolt"
)

type payload struct {
	Names []string `json:"names"`
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "kv.db"), nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestLoadMissingCollection(t *testing.T) {
	store := openTestStore(t)

	var got payload
	version, found, err := store.Load("community", &got)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if found {
		t.Fatalf("expected missing collection")
	}
	if version != 0 {
		t.Fatalf("expected version 0, got %d", version)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := openTestStore(t)

	if err := store.Save("community", payload{Names: []string{"a", "b"}}, 0); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	var got payload
	version, found, err := store.Load("community", &got)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !found {
		t.Fatalf("expected collection to be found")
	}
	if version != 1 {
		t.Fatalf("expected version 1, got %d", version)
	}
	if len(got.Names) != 2 || got.Names[0] != "a" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestSaveRejectsStaleVersion(t *testing.T) {
	store := openTestStore(t)

	if err := store.Save("ledger", payload{Names: []string{"first"}}, 0); err != nil {
		t.Fatalf("initial save failed: %v", err)
	}
	if err := store.Save("ledger", payload{Names: []string{"second"}}, 1); err != nil {
		t.Fatalf("follow-up save failed: %v", err)
	}

	err := store.Save("ledger", payload{Names: []string{"stale"}}, 1)
	if !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("expected version conflict, got %v", err)
	}
}

func TestLoadCorruptPayloadKeepsVersion(t *testing.T) {
	store := openTestStore(t)

	if err := store.Save("admin", payload{Names: []string{"ok"}}, 0); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	err := store.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCollections).Put([]byte("admin"), []byte("{not json"))
	})
	if err != nil {
		t.Fatalf("corrupting payload failed: %v", err)
	}

	var got payload
	version, found, err := store.Load("admin", &got)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if found {
		t.Fatalf("expected corrupt payload to read as missing")
	}
	if version != 1 {
		t.Fatalf("expected stored version to survive corruption, got %d", version)
	}

	// The caller can now overwrite the unreadable payload with its seed.
	if err := store.Save("admin", payload{Names: []string{"seed"}}, version); err != nil {
		t.Fatalf("seed overwrite failed: %v", err)
	}
}
