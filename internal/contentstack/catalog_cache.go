// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 StreamPick Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streampick/streampick

package contentstack

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/streampick/streampick/internal/models"
)

// catalogKey is the single key under which the movie catalog is stored.
const catalogKey = "catalog:movies"

// CatalogCache is a TTL-bounded read-through cache for the movie catalog,
// backed by BadgerDB. With a path it persists across restarts; with an
// empty path it runs in-memory (development and tests).
type CatalogCache struct {
	db  *badger.DB
	ttl time.Duration
}

// NewCatalogCache opens the cache at the given path. An empty path opens an
// in-memory database.
func NewCatalogCache(path string, ttl time.Duration) (*CatalogCache, error) {
	var opts badger.Options
	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(path)
	}
	opts.Logger = nil // Suppress BadgerDB logs

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for catalog cache: %w", err)
	}

	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &CatalogCache{db: db, ttl: ttl}, nil
}

// Get returns the cached catalog, or ok=false if absent or expired.
func (c *CatalogCache) Get() ([]models.Movie, bool) {
	var movies []models.Movie
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(catalogKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &movies)
		})
	})
	if err != nil {
		// Absent, expired, or undecodable entries all read as a miss; the
		// next Set overwrites whatever is there.
		return nil, false
	}
	return movies, true
}

// Set stores the catalog with the configured TTL.
func (c *CatalogCache) Set(movies []models.Movie) error {
	data, err := json.Marshal(movies)
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}

	return c.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(catalogKey), data).WithTTL(c.ttl)
		return txn.SetEntry(entry)
	})
}

// Invalidate drops the cached catalog.
func (c *CatalogCache) Invalidate() error {
	return c.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete([]byte(catalogKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
}

// Close closes the underlying database.
func (c *CatalogCache) Close() error {
	return c.db.Close()
}
