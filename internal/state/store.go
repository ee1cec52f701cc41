// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

package state

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/bytewise/internal/cache"
	"github.com/tomtom215/bytewise/internal/metrics"
	"github.com/tomtom215/bytewise/internal/models"
)

// Sentinel errors.
var (
	// ErrNotFound is returned when a key does not exist.
	ErrNotFound = errors.New("state: not found")

	// ErrCorrupt is returned when a stored value cannot be decoded.
	ErrCorrupt = errors.New("state: corrupt value")
)

// Key names under a session prefix.
const (
	KeyCreated             = "created"
	KeyModelState          = "modelState"
	KeyDietaryRestrictions = "dietaryRestrictions"
	KeyFoodParameters      = "foodParameters"
	KeyFoodItems           = "foodItems"

	sessionKeyPrefix = "session:"
	catalogKey       = "catalog:" + KeyFoodItems
)

// Options configures how the Badger database is opened.
type Options struct {
	// Path is the database directory. Ignored when InMemory is set.
	Path string

	// InMemory keeps all data in memory. Used by tests and ephemeral runs.
	InMemory bool

	// CatalogCacheTTL is how long a decoded catalog is served from memory.
	// Zero disables the cache.
	CatalogCacheTTL time.Duration

	// SyncWrites makes every write durable before it returns.
	SyncWrites bool
}

// Store is a BadgerDB-backed session state repository.
type Store struct {
	db      *badger.DB
	ownsDB  bool
	catalog *cache.Cache[[]models.FoodItem]
	logger  zerolog.Logger
}

// Open opens a Badger database and wraps it in a Store that closes it.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Open(opts Options, logger zerolog.Logger) (*Store, error) {
	var bopts badger.Options
	if opts.InMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if opts.Path == "" {
			return nil, errors.New("state: path is required unless in_memory is set")
		}
		bopts = badger.DefaultOptions(opts.Path).WithSyncWrites(opts.SyncWrites)
	}
	bopts.Logger = newBadgerLogger(logger)

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}

	s := NewStore(db, opts.CatalogCacheTTL, logger)
	s.ownsDB = true
	return s, nil
}

// NewStore wraps an existing database. The caller keeps ownership of db.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewStore(db *badger.DB, catalogTTL time.Duration, logger zerolog.Logger) *Store {
	s := &Store{
		db:     db,
		logger: logger.With().Str("component", "state").Logger(),
	}
	if catalogTTL > 0 {
		s.catalog = cache.New[[]models.FoodItem](catalogTTL)
	}
	return s
}

// Close closes the database if Store opened it.
func (s *Store) Close() error {
	if !s.ownsDB {
		return nil
	}
	return s.db.Close()
}

// Ping verifies the database is usable.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.db.IsClosed() {
		return errors.New("state: database is closed")
	}
	return s.db.View(func(_ *badger.Txn) error { return nil })
}

// RunGC sweeps expired catalog cache entries and runs one round of value
// log garbage collection. It returns nil when there was nothing to rewrite.
func (s *Store) RunGC(discardRatio float64) error {
	if s.catalog != nil {
		if n := s.catalog.Cleanup(); n > 0 {
			s.logger.Debug().Int("entries", n).Msg("Expired catalog cache entries removed")
		}
	}
	err := s.db.RunValueLogGC(discardRatio)
	if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrGCInMemoryMode) {
		return nil
	}
	return err
}

func sessionKey(sessionID, name string) []byte {
	return []byte(sessionKeyPrefix + sessionID + ":" + name)
}

// getJSON decodes the value at key into dst. label names the key type for
// metrics and errors.
func (s *Store) getJSON(ctx context.Context, key []byte, label string, dst interface{}) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	defer func() {
		if errors.Is(err, ErrNotFound) {
			metrics.RecordStoreOperation("get", label, time.Since(start), nil)
			return
		}
		metrics.RecordStoreOperation("get", label, time.Since(start), err)
	}()

	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get %s: %w", label, err)
		}

		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, dst); err != nil {
				return fmt.Errorf("%w: %s: %v", ErrCorrupt, label, err)
			}
			return nil
		})
	})
}

// setJSON encodes value and stores it at key.
func (s *Store) setJSON(ctx context.Context, key []byte, label string, value interface{}) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	defer func() {
		metrics.RecordStoreOperation("set", label, time.Since(start), err)
	}()

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", label, err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key, data); err != nil {
			return fmt.Errorf("set %s: %w", label, err)
		}
		return nil
	})
}

// deleteKey removes key. Deleting a missing key is not an error.
func (s *Store) deleteKey(ctx context.Context, key []byte, label string) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	defer func() {
		metrics.RecordStoreOperation("delete", label, time.Since(start), err)
	}()

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(key); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete %s: %w", label, err)
		}
		return nil
	})
}
