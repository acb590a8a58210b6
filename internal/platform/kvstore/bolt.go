// Package kvstore persists whole-collection JSON documents in a local bbolt
// file. Each named collection is saved as a single unit with a version stamp,
// so saves are compare-and-swap over the last version the caller observed.
package kvstore

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	bolt "go.etcd.io/bbolt"
)

// ErrVersionConflict signals a save built on a stale read of the collection.
var ErrVersionConflict = errors.New("collection version conflict")

var (
	bucketCollections = []byte("collections")
	bucketVersions    = []byte("versions")
)

type Store struct {
	db     *bolt.DB
	logger *slog.Logger
}

func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt store %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketCollections); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(bucketVersions)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init bolt buckets: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Load decodes the collection into out and reports the stored version. A
// missing collection or unreadable payload yields found=false, never an
// error: callers fall back to their documented seed value.
func (s *Store) Load(collection string, out any) (version uint64, found bool, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		version = decodeVersion(tx.Bucket(bucketVersions).Get([]byte(collection)))
		raw := tx.Bucket(bucketCollections).Get([]byte(collection))
		if raw == nil {
			return nil
		}
		if unmarshalErr := json.Unmarshal(raw, out); unmarshalErr != nil {
			// The version still counts so the caller can overwrite the
			// unreadable payload with its seed.
			s.logger.Warn("stored collection is unreadable, falling back to seed",
				"event", "kvstore_corrupt_collection",
				"module", "internal/platform/kvstore",
				"layer", "platform",
				"collection", collection,
				"error", unmarshalErr.Error(),
			)
			return nil
		}
		found = true
		return nil
	})
	if err != nil {
		return 0, false, fmt.Errorf("load collection %s: %w", collection, err)
	}
	return version, found, nil
}

// Save overwrites the whole collection atomically. lastVersion must match the
// version returned by the read this save was built on; zero is only valid for
// a collection that has never been saved.
func (s *Store) Save(collection string, value any, lastVersion uint64) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", collection, err)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		versions := tx.Bucket(bucketVersions)
		current := decodeVersion(versions.Get([]byte(collection)))
		if current != lastVersion {
			return ErrVersionConflict
		}
		if err := tx.Bucket(bucketCollections).Put([]byte(collection), payload); err != nil {
			return err
		}
		return versions.Put([]byte(collection), encodeVersion(current+1))
	})
	if err != nil {
		if errors.Is(err, ErrVersionConflict) {
			return ErrVersionConflict
		}
		return fmt.Errorf("save collection %s: %w", collection, err)
	}
	return nil
}

func decodeVersion(raw []byte) uint64 {
	if len(raw) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(raw)
}

func encodeVersion(version uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, version)
	return buf
}
