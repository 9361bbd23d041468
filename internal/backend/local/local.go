// Package local implements service.Store on an embedded BadgerDB.
//
// Each document is stored as a JSON object under the key
// "<collection>/<id>". IDs are UUIDv7, so a prefix scan returns documents in
// creation order.
package local

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"gtodo/internal/service"
)

// Config holds configuration for the local store.
type Config struct {
	// Path is the directory for BadgerDB files. Ignored when InMemory is true.
	Path string

	// InMemory keeps all data in memory. Useful for testing.
	InMemory bool

	// SyncWrites makes every commit durable before returning.
	SyncWrites bool

	// Logger receives BadgerDB's internal logs. Nil disables them.
	Logger *zap.Logger
}

// InMemoryConfig returns configuration for tests.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// Store implements service.Store using BadgerDB.
type Store struct {
	db *badger.DB
}

// badgerLogger adapts zap to BadgerDB's Logger interface.
type badgerLogger struct {
	s *zap.SugaredLogger
}

func (l *badgerLogger) Errorf(format string, args ...interface{})   { l.s.Errorf(format, args...) }
func (l *badgerLogger) Warningf(format string, args ...interface{}) { l.s.Warnf(format, args...) }
func (l *badgerLogger) Infof(format string, args ...interface{})    { l.s.Infof(format, args...) }
func (l *badgerLogger) Debugf(format string, args ...interface{})   { l.s.Debugf(format, args...) }

// Open opens (creating if needed) the local store.
func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("path is required for persistent database")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0700); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)

	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{s: cfg.Logger.Named("badger").Sugar()})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}
	return &Store{db: db}, nil
}

func docKey(collection, id string) []byte {
	return []byte(collection + "/" + id)
}

func collectionPrefix(collection string) []byte {
	return []byte(collection + "/")
}

// Find implements service.Store.
func (s *Store) Find(ctx context.Context, collection, field string, value any) ([]service.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prefix := collectionPrefix(collection)
	var result []service.Document
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			raw, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			fields, err := decode(raw)
			if err != nil {
				return fmt.Errorf("decode %s: %w", item.Key(), err)
			}
			if v, ok := fields[field]; ok && equal(v, value) {
				id := string(bytes.TrimPrefix(item.KeyCopy(nil), prefix))
				result = append(result, service.Document{ID: id, Fields: fields})
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("find %s where %s: %w", collection, field, err)
	}
	return result, nil
}

// Get implements service.Store.
func (s *Store) Get(ctx context.Context, collection, id string) (service.Document, error) {
	if err := ctx.Err(); err != nil {
		return service.Document{}, err
	}

	var fields service.Fields
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		fields, err = read(txn, docKey(collection, id))
		return err
	})
	if err != nil {
		return service.Document{}, err
	}
	return service.Document{ID: id, Fields: fields}, nil
}

// Insert implements service.Store.
func (s *Store) Insert(ctx context.Context, collection string, fields service.Fields) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(docKey(collection, id.String()), raw)
	})
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	return id.String(), nil
}

// Update implements service.Store.
// The read-modify-write runs in a single transaction.
func (s *Store) Update(ctx context.Context, collection, id string, fields service.Fields) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := docKey(collection, id)
	return s.db.Update(func(txn *badger.Txn) error {
		existing, err := read(txn, key)
		if err != nil {
			return err
		}

		// Round-trip the patch through JSON so merged values have the same
		// shapes as decoded ones.
		patch, err := normalize(fields)
		if err != nil {
			return err
		}
		service.MergeFields(existing, patch)

		raw, err := json.Marshal(existing)
		if err != nil {
			return fmt.Errorf("encode document: %w", err)
		}
		return txn.Set(key, raw)
	})
}

// Delete implements service.Store.
func (s *Store) Delete(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(docKey(collection, id))
	})
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

// Close implements service.Store.
func (s *Store) Close() error {
	return s.db.Close()
}

func read(txn *badger.Txn, key []byte) (service.Fields, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, service.ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	raw, err := item.ValueCopy(nil)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return decode(raw)
}

func decode(raw []byte) (service.Fields, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return service.Fields(fields), nil
}

func normalize(fields service.Fields) (service.Fields, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode update: %w", err)
	}
	return decode(raw)
}

// equal compares a decoded JSON value with a query value. JSON numbers decode
// as float64, so numeric query values are compared as float64.
func equal(stored, value any) bool {
	switch v := value.(type) {
	case int:
		value = float64(v)
	case int64:
		value = float64(v)
	}
	switch stored.(type) {
	case map[string]any, []any:
		return false
	}
	return stored == value
}
