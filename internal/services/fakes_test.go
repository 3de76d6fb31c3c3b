package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"vendor_rewards/internal/db/models"
)

var errNoStreakFunction = errors.New("function user_streak does not exist")

// ledger is an in-memory stand-in for the users, votes and proofs tables.
type ledger struct {
	mu      sync.Mutex
	users   map[string]*models.User
	votes   map[string]*models.Vote
	proofs  map[string]*models.Proof
	vendors map[string]*models.Vendor

	failCreateVote         error
	failAddBalance         error
	failUpdateDistribution error
}

func newLedger() *ledger {
	return &ledger{
		users:   make(map[string]*models.User),
		votes:   make(map[string]*models.Vote),
		proofs:  make(map[string]*models.Proof),
		vendors: make(map[string]*models.Vendor),
	}
}

func (l *ledger) votesOf(voterID string) []*models.Vote {
	l.mu.Lock()
	defer l.mu.Unlock()

	votes := make([]*models.Vote, 0)
	for _, vote := range l.votes {
		if vote.VoterID == voterID {
			copied := *vote
			votes = append(votes, &copied)
		}
	}
	sort.Slice(votes, func(i, j int) bool { return votes[i].CreatedAt.Before(votes[j].CreatedAt) })

	return votes
}

func (l *ledger) user(userID string) *models.User {
	l.mu.Lock()
	defer l.mu.Unlock()

	user, ok := l.users[userID]
	if !ok {
		return nil
	}
	copied := *user
	return &copied
}

type fakeUsers struct{ *ledger }

func (f fakeUsers) EnsureExists(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.users[userID]; !ok {
		f.users[userID] = &models.User{ID: userID}
	}
	return nil
}

func (f fakeUsers) Update(_ context.Context, request *models.User) (*models.User, error) {
	f.mu.Lock()
	user, ok := f.users[request.ID]
	if ok {
		user.TelegramID = request.TelegramID
		user.TelegramState = request.TelegramState
	}
	f.mu.Unlock()

	return f.user(request.ID), nil
}

func (f fakeUsers) GetOne(_ context.Context, userID string) (*models.User, error) {
	return f.user(userID), nil
}

func (f fakeUsers) GetOneByTelegramID(_ context.Context, telegramID int64) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.TelegramID == telegramID {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f fakeUsers) AddBalance(_ context.Context, userID string, amount int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failAddBalance != nil {
		return 0, f.failAddBalance
	}
	user, ok := f.users[userID]
	if !ok {
		return 0, fmt.Errorf("no user %s", userID)
	}
	user.TokenBalance += amount
	return user.TokenBalance, nil
}

func (f fakeUsers) AdvanceStreak(_ context.Context, userID string, streak int, day string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[userID]
	if !ok || (user.StreakUpdatedOn != "" && user.StreakUpdatedOn >= day) {
		return false, nil
	}
	user.CurrentStreak = streak
	user.StreakUpdatedOn = day
	return true, nil
}

func (f fakeUsers) ResetStreak(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if user, ok := f.users[userID]; ok {
		user.CurrentStreak = 0
	}
	return nil
}

func (f fakeUsers) SetWallet(_ context.Context, userID, walletAddress string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if user, ok := f.users[userID]; ok {
		user.WalletAddress = walletAddress
	}
	return nil
}

func (f fakeUsers) GetPrecomputedStreak(context.Context, string, string, string) (int, error) {
	return 0, errNoStreakFunction
}

func (f fakeUsers) GetManyWithLapsedStreak(_ context.Context, beforeDay string) ([]*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	users := make([]*models.User, 0)
	for _, user := range f.users {
		if user.CurrentStreak > 0 && user.StreakUpdatedOn < beforeDay {
			copied := *user
			users = append(users, &copied)
		}
	}
	return users, nil
}

type fakeVotes struct{ *ledger }

func (f fakeVotes) Create(_ context.Context, request *models.Vote) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failCreateVote != nil {
		return f.failCreateVote
	}
	if _, ok := f.votes[request.ID]; ok {
		return fmt.Errorf("duplicate key value violates unique constraint \"votes_pkey\"")
	}
	copied := *request
	f.votes[request.ID] = &copied
	return nil
}

func (f fakeVotes) GetOne(_ context.Context, voteID string) (*models.Vote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	vote, ok := f.votes[voteID]
	if !ok {
		return nil, nil
	}
	copied := *vote
	return &copied, nil
}

func (f fakeVotes) AttachProof(_ context.Context, voteID, proofID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	vote, ok := f.votes[voteID]
	if !ok {
		return fmt.Errorf("no vote %s", voteID)
	}
	vote.ProofID = proofID
	return nil
}

func (f fakeVotes) count(match func(*models.Vote) bool) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	count := 0
	for _, vote := range f.votes {
		if match(vote) {
			count++
		}
	}
	return count
}

func (f fakeVotes) CountByVoter(_ context.Context, voterID string, from, to time.Time) (int, error) {
	return f.count(func(v *models.Vote) bool {
		return v.VoterID == voterID && !v.CreatedAt.Before(from) && v.CreatedAt.Before(to)
	}), nil
}

func (f fakeVotes) CountByVoterAndVendor(_ context.Context, voterID, vendorID string, from, to time.Time) (int, error) {
	return f.count(func(v *models.Vote) bool {
		return v.VoterID == voterID && v.VendorID == vendorID && !v.CreatedAt.Before(from) && v.CreatedAt.Before(to)
	}), nil
}

func (f fakeVotes) GetCreatedAtSince(_ context.Context, voterID string, since time.Time) ([]time.Time, error) {
	createdAt := make([]time.Time, 0)
	for _, vote := range f.votesOf(voterID) {
		if !vote.CreatedAt.Before(since) {
			createdAt = append(createdAt, vote.CreatedAt)
		}
	}
	sort.Slice(createdAt, func(i, j int) bool { return createdAt[i].After(createdAt[j]) })
	return createdAt, nil
}

func (f fakeVotes) GetManyByDistributionStatus(_ context.Context, voterID string, status models.DistributionStatus) ([]*models.Vote, error) {
	votes := make([]*models.Vote, 0)
	for _, vote := range f.votesOf(voterID) {
		if vote.DistributionStatus == status {
			votes = append(votes, vote)
		}
	}
	return votes, nil
}

func (f fakeVotes) UpdateDistribution(_ context.Context, vote *models.Vote, from ...models.DistributionStatus) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failUpdateDistribution != nil {
		return false, f.failUpdateDistribution
	}

	stored, ok := f.votes[vote.ID]
	if !ok {
		return false, nil
	}

	if len(from) > 0 {
		allowed := false
		for _, status := range from {
			allowed = allowed || stored.DistributionStatus == status
		}
		if !allowed {
			return false, nil
		}
	}

	stored.DistributionStatus = vote.DistributionStatus
	stored.DistributionTxRef = vote.DistributionTxRef
	stored.DistributionError = vote.DistributionError
	stored.DistributionAttempts = vote.DistributionAttempts
	return true, nil
}

func (f fakeVotes) GetHistory(_ context.Context, voterID string, limit int) ([]*models.Vote, error) {
	votes := f.votesOf(voterID)
	sort.Slice(votes, func(i, j int) bool { return votes[i].CreatedAt.After(votes[j].CreatedAt) })
	if len(votes) > limit {
		votes = votes[:limit]
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, vote := range votes {
		vote.Vendor = f.vendors[vote.VendorID]
	}
	return votes, nil
}

func (f fakeVotes) GetVendorStats(_ context.Context, vendorID string) (*models.VendorStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stats := &models.VendorStats{VendorID: vendorID}
	voters := make(map[string]bool)
	for _, vote := range f.votes {
		if vote.VendorID != vendorID {
			continue
		}
		stats.TotalVotes++
		if vote.Kind == models.VoteKindVerified {
			stats.VerifiedVotes++
		}
		stats.TokensAwarded += vote.TokenReward
		voters[vote.VoterID] = true
	}
	stats.UniqueVoters = len(voters)
	stats.RegularVotes = stats.TotalVotes - stats.VerifiedVotes
	if stats.TotalVotes > 0 {
		stats.VerificationRate = float64(stats.VerifiedVotes) / float64(stats.TotalVotes)
	}
	return stats, nil
}

func (f fakeVotes) GetVoterIDsByDistributionStatus(_ context.Context, status models.DistributionStatus) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	seen := make(map[string]bool)
	voterIDs := make([]string, 0)
	for _, vote := range f.votes {
		if vote.DistributionStatus == status && !seen[vote.VoterID] {
			seen[vote.VoterID] = true
			voterIDs = append(voterIDs, vote.VoterID)
		}
	}
	sort.Strings(voterIDs)
	return voterIDs, nil
}

type fakeProofs struct{ *ledger }

func (f fakeProofs) Create(_ context.Context, request *models.Proof) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	copied := *request
	f.proofs[request.ID] = &copied
	return nil
}

func (f fakeProofs) ContentHashUsedSince(_ context.Context, contentHash string, since time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, proof := range f.proofs {
		if proof.ContentHash == contentHash && !proof.CreatedAt.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

// fakeSink fails the calls whose 1-based index is in failOn.
type fakeSink struct {
	mu        sync.Mutex
	calls     int
	failOn    map[int]bool
	transfers []int64
}

func (s *fakeSink) Transfer(_ context.Context, walletAddress string, amount int64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	if s.failOn[s.calls] {
		return "", errors.New("execution reverted")
	}
	s.transfers = append(s.transfers, amount)
	return fmt.Sprintf("0xtx%d", s.calls), nil
}
