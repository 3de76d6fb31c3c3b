// Package evidence rejects proof-of-visit photos that were already used and
// keeps a short per-user log of such attempts for abuse review.
package evidence

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"vendor_rewards/internal/calendar"
)

const (
	Retention        = 24 * time.Hour
	DefaultLogLength = 50
)

type Store interface {
	SetIfAbsent(key string, value []byte, ttl time.Duration) (bool, error)
	Delete(key string) error
	PushBounded(key string, value any, limit int, ttl time.Duration) error
	List(key string) ([]json.RawMessage, error)
}

// ProofLedger answers whether a committed proof already carries a hash.
// It covers sightings the cache lost to a restart.
type ProofLedger interface {
	ContentHashUsedSince(ctx context.Context, contentHash string, since time.Time) (bool, error)
}

type SuspiciousActivity struct {
	Reason      string    `json:"reason"`
	VendorID    string    `json:"vendor_id"`
	ContentHash string    `json:"content_hash"`
	At          time.Time `json:"at"`
}

type Filter struct {
	store     Store
	proofs    ProofLedger
	calendar  *calendar.Calendar
	logLength int
}

// NewFilter builds a filter over the cache. proofs may be nil, in which case
// only the cache is consulted.
func NewFilter(store Store, proofs ProofLedger, calendar *calendar.Calendar, logLength int) *Filter {
	if logLength <= 0 {
		logLength = DefaultLogLength
	}

	return &Filter{store: store, proofs: proofs, calendar: calendar, logLength: logLength}
}

// IsDuplicate reports whether hash was seen within the retention window.
// A hash that was not seen is recorded as a side effect and stays recorded
// until Release is called or the window passes.
func (f *Filter) IsDuplicate(ctx context.Context, hash string) (bool, error) {
	hash = NormalizeHash(hash)

	stored, err := f.store.SetIfAbsent(proofKey(hash), []byte{1}, Retention)
	if err != nil {
		return false, fmt.Errorf("failed to check evidence %s: %w", hash, err)
	}
	if !stored {
		return true, nil
	}
	if f.proofs == nil {
		return false, nil
	}

	used, err := f.proofs.ContentHashUsedSince(ctx, hash, f.calendar.Now().Add(-Retention))
	if err != nil {
		_ = f.store.Delete(proofKey(hash))
		return false, fmt.Errorf("failed to look up evidence %s: %w", hash, err)
	}

	return used, nil
}

// Release forgets a hash recorded by IsDuplicate whose vote was not committed.
func (f *Filter) Release(hash string) error {
	if err := f.store.Delete(proofKey(NormalizeHash(hash))); err != nil {
		return fmt.Errorf("failed to release evidence %s: %w", hash, err)
	}
	return nil
}

func (f *Filter) RecordSuspicious(userID string, activity SuspiciousActivity) error {
	return f.store.PushBounded(suspiciousKey(userID), activity, f.logLength, Retention)
}

// Suspicious returns the retained attempts of a user, oldest first.
func (f *Filter) Suspicious(userID string) ([]SuspiciousActivity, error) {
	list, err := f.store.List(suspiciousKey(userID))
	if err != nil {
		return nil, err
	}

	activities := make([]SuspiciousActivity, 0, len(list))
	for _, raw := range list {
		var activity SuspiciousActivity
		if err := json.Unmarshal(raw, &activity); err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}

	return activities, nil
}

// ContentHash derives the dedup key from a proof reference when the client
// did not send a content hash of its own.
func ContentHash(reference string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(reference)))
	return hex.EncodeToString(sum[:])
}

func NormalizeHash(hash string) string {
	return strings.ToLower(strings.TrimSpace(hash))
}

func proofKey(hash string) string {
	return "proof:" + hash
}

func suspiciousKey(userID string) string {
	return "suspicious:" + userID
}
