package evidence

import (
	"context"
	"errors"
	"testing"
	"time"

	"vendor_rewards/internal/cache"
	"vendor_rewards/internal/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

type fakeProofLedger struct {
	used  map[string]time.Time
	err   error
	since time.Time
}

func (l *fakeProofLedger) ContentHashUsedSince(_ context.Context, contentHash string, since time.Time) (bool, error) {
	l.since = since
	if l.err != nil {
		return false, l.err
	}
	at, ok := l.used[contentHash]
	return ok && !at.Before(since), nil
}

func openTestStore(t *testing.T) *cache.Store {
	t.Helper()

	store, err := cache.Open("", zap.NewNop().Sugar())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func newTestFilter(t *testing.T, logLength int) *Filter {
	t.Helper()

	c := calendar.NewWithClock(time.UTC, func() time.Time { return testNow })
	return NewFilter(openTestStore(t), nil, c, logLength)
}

func TestIsDuplicate_SecondSightingIsDuplicate(t *testing.T) {
	filter := newTestFilter(t, 0)
	hash := ContentHash("https://cdn.example.com/photos/1.jpg")

	duplicate, err := filter.IsDuplicate(context.Background(), hash)
	require.NoError(t, err)
	assert.False(t, duplicate)

	duplicate, err = filter.IsDuplicate(context.Background(), hash)
	require.NoError(t, err)
	assert.True(t, duplicate)
}

func TestIsDuplicate_HashIsCaseInsensitive(t *testing.T) {
	filter := newTestFilter(t, 0)

	duplicate, err := filter.IsDuplicate(context.Background(), "ABCDEF")
	require.NoError(t, err)
	assert.False(t, duplicate)

	duplicate, err = filter.IsDuplicate(context.Background(), " abcdef")
	require.NoError(t, err)
	assert.True(t, duplicate)
}

func TestIsDuplicate_CommittedProofSurvivesCacheLoss(t *testing.T) {
	c := calendar.NewWithClock(time.UTC, func() time.Time { return testNow })
	proofs := &fakeProofLedger{used: map[string]time.Time{"abc": testNow.Add(-time.Hour)}}

	// a fresh cache, as after a restart or on another replica
	filter := NewFilter(openTestStore(t), proofs, c, 0)

	duplicate, err := filter.IsDuplicate(context.Background(), "ABC")
	require.NoError(t, err)
	assert.True(t, duplicate)
	assert.True(t, testNow.Add(-Retention).Equal(proofs.since))

	duplicate, err = filter.IsDuplicate(context.Background(), "fresh")
	require.NoError(t, err)
	assert.False(t, duplicate)
}

func TestIsDuplicate_ProofOutsideRetentionIsNotDuplicate(t *testing.T) {
	c := calendar.NewWithClock(time.UTC, func() time.Time { return testNow })
	proofs := &fakeProofLedger{used: map[string]time.Time{"abc": testNow.Add(-25 * time.Hour)}}
	filter := NewFilter(openTestStore(t), proofs, c, 0)

	duplicate, err := filter.IsDuplicate(context.Background(), "abc")
	require.NoError(t, err)
	assert.False(t, duplicate)
}

func TestIsDuplicate_LedgerFailureLeavesHashUnrecorded(t *testing.T) {
	c := calendar.NewWithClock(time.UTC, func() time.Time { return testNow })
	proofs := &fakeProofLedger{err: errors.New("db down")}
	filter := NewFilter(openTestStore(t), proofs, c, 0)

	_, err := filter.IsDuplicate(context.Background(), "abc")
	require.Error(t, err)

	proofs.err = nil
	duplicate, err := filter.IsDuplicate(context.Background(), "abc")
	require.NoError(t, err)
	assert.False(t, duplicate)
}

func TestRelease_HashCanBeUsedAgain(t *testing.T) {
	filter := newTestFilter(t, 0)

	duplicate, err := filter.IsDuplicate(context.Background(), "abc")
	require.NoError(t, err)
	require.False(t, duplicate)

	require.NoError(t, filter.Release("ABC"))

	duplicate, err = filter.IsDuplicate(context.Background(), "abc")
	require.NoError(t, err)
	assert.False(t, duplicate)

	duplicate, err = filter.IsDuplicate(context.Background(), "abc")
	require.NoError(t, err)
	assert.True(t, duplicate)
}

func TestRelease_UnknownHash(t *testing.T) {
	filter := newTestFilter(t, 0)
	assert.NoError(t, filter.Release("never-seen"))
}

func TestContentHash_TrimsReference(t *testing.T) {
	assert.Equal(t, ContentHash("photo.jpg"), ContentHash("  photo.jpg\n"))
	assert.NotEqual(t, ContentHash("photo.jpg"), ContentHash("other.jpg"))
	assert.Len(t, ContentHash("photo.jpg"), 64)
}

func TestSuspicious_BoundedLog(t *testing.T) {
	filter := newTestFilter(t, 2)
	at := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

	for _, vendor := range []string{"v1", "v2", "v3"} {
		require.NoError(t, filter.RecordSuspicious("u1", SuspiciousActivity{
			Reason:   "duplicate evidence",
			VendorID: vendor,
			At:       at,
		}))
	}

	activities, err := filter.Suspicious("u1")
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, "v2", activities[0].VendorID)
	assert.Equal(t, "v3", activities[1].VendorID)
	assert.True(t, at.Equal(activities[1].At))

	activities, err = filter.Suspicious("u2")
	require.NoError(t, err)
	assert.Empty(t, activities)
}
