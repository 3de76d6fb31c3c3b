// Package cache is the low-latency key-value store behind counters, the
// duplicate-evidence filter and the advisory balance/streak entries. It wraps
// badger and relies on per-entry TTLs so stale keys clean themselves up.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

const maxConflictRetries = 5

var ErrNotFound = errors.New("cache: key not found")

type Store struct {
	db     *badger.DB
	logger *zap.SugaredLogger
}

// Open opens a badger store at path. An empty path opens an in-memory store.
func Open(path string, logger *zap.SugaredLogger) (*Store, error) {
	options := badger.DefaultOptions(path).WithLogger(badgerLogger{logger})
	if path == "" {
		options = options.WithInMemory(true)
	}

	db, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}

	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// IncrementBy atomically adds delta to the counter at key and refreshes its
// expiry to ttl. Missing or expired counters start from zero.
func (s *Store) IncrementBy(key string, delta int64, ttl time.Duration) (int64, error) {
	var value int64

	err := s.update(func(txn *badger.Txn) error {
		current, err := getInt(txn, key)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}

		value = current + delta
		return txn.SetEntry(badger.NewEntry([]byte(key), []byte(strconv.FormatInt(value, 10))).WithTTL(ttl))
	})
	if err != nil {
		return 0, fmt.Errorf("failed to increment %s: %w", key, err)
	}

	return value, nil
}

// GetInt returns ErrNotFound when the key is missing or expired.
func (s *Store) GetInt(key string) (int64, error) {
	var value int64

	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		value, err = getInt(txn, key)
		return err
	})

	return value, err
}

func (s *Store) SetInt(key string, value int64, ttl time.Duration) error {
	return s.update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry([]byte(key), []byte(strconv.FormatInt(value, 10))).WithTTL(ttl))
	})
}

func (s *Store) Delete(key string) error {
	return s.update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// SetIfAbsent stores value under key unless a live entry already exists.
// It reports whether the value was stored.
func (s *Store) SetIfAbsent(key string, value []byte, ttl time.Duration) (bool, error) {
	stored := false

	err := s.update(func(txn *badger.Txn) error {
		stored = false

		_, err := txn.Get([]byte(key))
		if err == nil {
			return nil
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		stored = true
		return txn.SetEntry(badger.NewEntry([]byte(key), value).WithTTL(ttl))
	})
	if err != nil {
		return false, fmt.Errorf("failed to set %s: %w", key, err)
	}

	return stored, nil
}

// PushBounded appends value to the JSON list at key, keeps only the newest
// limit elements and refreshes the list expiry.
func (s *Store) PushBounded(key string, value any, limit int, ttl time.Duration) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.update(func(txn *badger.Txn) error {
		list, err := getList(txn, key)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}

		list = append(list, encoded)
		if len(list) > limit {
			list = list[len(list)-limit:]
		}

		data, err := json.Marshal(list)
		if err != nil {
			return err
		}

		return txn.SetEntry(badger.NewEntry([]byte(key), data).WithTTL(ttl))
	})
}

// List returns the raw JSON elements stored by PushBounded, oldest first.
func (s *Store) List(key string) ([]json.RawMessage, error) {
	var list []json.RawMessage

	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		list, err = getList(txn, key)
		return err
	})
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}

	return list, err
}

// update retries transactions that lost a write conflict against a
// concurrent writer of the same key.
func (s *Store) update(fn func(txn *badger.Txn) error) error {
	var err error

	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		err = s.db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}

	s.logger.Warnw("cache transaction kept conflicting", "attempts", maxConflictRetries)
	return err
}

func getInt(txn *badger.Txn, key string) (int64, error) {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}

	var value int64
	err = item.Value(func(val []byte) error {
		value, err = strconv.ParseInt(string(val), 10, 64)
		return err
	})

	return value, err
}

func getList(txn *badger.Txn, key string) ([]json.RawMessage, error) {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var list []json.RawMessage
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &list)
	})

	return list, err
}

type badgerLogger struct {
	logger *zap.SugaredLogger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Errorf(format, args...)
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warnf(format, args...)
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debugf(format, args...)
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debugf(format, args...)
}
