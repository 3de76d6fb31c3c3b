package services

import (
	"context"
	"testing"
	"time"

	"vendor_rewards/internal/cache"
	"vendor_rewards/internal/calendar"
	"vendor_rewards/internal/counters"
	"vendor_rewards/internal/db/models"
	"vendor_rewards/internal/evidence"
	"vendor_rewards/internal/rewards"
	"vendor_rewards/internal/streak"
	"vendor_rewards/internal/wallet"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testWallet = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"

type clock struct {
	now time.Time
}

func (c *clock) advanceDays(days int) {
	c.now = c.now.AddDate(0, 0, days)
}

type fixture struct {
	clock         *clock
	ledger        *ledger
	store         *cache.Store
	sink          *fakeSink
	calendar      *calendar.Calendar
	counters      *counters.Counters
	evidence      *evidence.Filter
	tracker       *streak.Tracker
	balances      BalanceService
	distributions DistributionService
	votes         VoteService
}

func newFixture(t *testing.T, policy rewards.Policy) *fixture {
	return newFixtureWithSink(t, policy, &fakeSink{})
}

func newFixtureWithSink(t *testing.T, policy rewards.Policy, sink *fakeSink) *fixture {
	t.Helper()

	logger := zap.NewNop().Sugar()

	store, err := cache.Open("", logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	f := &fixture{
		clock:  &clock{now: time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)},
		ledger: newLedger(),
		store:  store,
		sink:   sink,
	}

	users := fakeUsers{f.ledger}
	votes := fakeVotes{f.ledger}
	proofs := fakeProofs{f.ledger}

	f.calendar = calendar.NewWithClock(time.UTC, func() time.Time { return f.clock.now })
	f.counters = counters.New(store, f.calendar)
	f.evidence = evidence.NewFilter(store, proofs, f.calendar, evidence.DefaultLogLength)
	f.tracker = streak.NewTracker(users, votes, store, f.calendar, logger)
	f.balances = NewBalanceService(users, store, logger)

	var sinkIface wallet.Sink
	if sink != nil {
		sinkIface = sink
	}
	f.distributions = NewDistributionService(users, votes, sinkIface, logger)

	calculator := rewards.NewCalculator(votes, f.tracker, f.counters, f.calendar, policy, logger)
	f.votes = NewVoteService(users, votes, proofs, f.evidence, f.counters, calculator, f.tracker, f.balances, f.distributions, f.calendar, logger)

	return f
}

func (f *fixture) submit(t *testing.T, request SubmitVoteRequest) SubmitVoteResult {
	t.Helper()

	result, err := f.votes.Submit(context.Background(), request)
	require.NoError(t, err)
	return result
}

// seedVote writes a ledger row directly, bypassing admission.
func (f *fixture) seedVote(id, voterID string, createdAt time.Time, reward int64, status models.DistributionStatus) {
	f.ledger.mu.Lock()
	defer f.ledger.mu.Unlock()

	if _, ok := f.ledger.users[voterID]; !ok {
		f.ledger.users[voterID] = &models.User{ID: voterID}
	}
	f.ledger.votes[id] = &models.Vote{
		ID:                 id,
		VoterID:            voterID,
		VendorID:           "vendor-seed",
		Kind:               models.VoteKindRegular,
		TokenReward:        reward,
		DistributionStatus: status,
		CreatedAt:          createdAt,
	}
}

func regular(voterID, vendorID string) SubmitVoteRequest {
	return SubmitVoteRequest{VoterID: voterID, VendorID: vendorID, Kind: models.VoteKindRegular}
}

func verified(voterID, vendorID, proofURL string) SubmitVoteRequest {
	return SubmitVoteRequest{VoterID: voterID, VendorID: vendorID, Kind: models.VoteKindVerified, ProofURL: proofURL}
}
