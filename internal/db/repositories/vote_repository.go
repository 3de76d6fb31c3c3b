package repositories

import (
	"context"
	"time"

	"vendor_rewards/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type voteRepository struct {
	repository
}

type VoteRepository interface {
	Create(ctx context.Context, request *models.Vote) error
	GetOne(ctx context.Context, voteID string) (*models.Vote, error)
	AttachProof(ctx context.Context, voteID, proofID string) error
	CountByVoter(ctx context.Context, voterID string, from, to time.Time) (int, error)
	CountByVoterAndVendor(ctx context.Context, voterID, vendorID string, from, to time.Time) (int, error)
	GetCreatedAtSince(ctx context.Context, voterID string, since time.Time) ([]time.Time, error)
	GetManyByDistributionStatus(ctx context.Context, voterID string, status models.DistributionStatus) ([]*models.Vote, error)
	UpdateDistribution(ctx context.Context, vote *models.Vote, from ...models.DistributionStatus) (bool, error)
	GetHistory(ctx context.Context, voterID string, limit int) ([]*models.Vote, error)
	GetVendorStats(ctx context.Context, vendorID string) (*models.VendorStats, error)
	GetVoterIDsByDistributionStatus(ctx context.Context, status models.DistributionStatus) ([]string, error)
}

func NewVoteRepository(db *pg.DB) VoteRepository {
	return &voteRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *voteRepository) Create(ctx context.Context, request *models.Vote) error {
	_, err := r.db.ModelContext(ctx, request).Insert()
	return err
}

func (r *voteRepository) GetOne(ctx context.Context, voteID string) (*models.Vote, error) {
	vote := &models.Vote{}

	err := r.db.ModelContext(ctx, vote).
		Where("id = ?", voteID).
		Select()
	if err != nil {
		return nil, noRows(err)
	}

	return vote, nil
}

func (r *voteRepository) AttachProof(ctx context.Context, voteID, proofID string) error {
	_, err := r.db.ModelContext(ctx, (*models.Vote)(nil)).
		Set("proof_id = ?", proofID).
		Where("id = ?", voteID).
		Update()

	return err
}

func (r *voteRepository) CountByVoter(ctx context.Context, voterID string, from, to time.Time) (int, error) {
	return r.db.ModelContext(ctx, (*models.Vote)(nil)).
		Where("voter_id = ?", voterID).
		Where("created_at >= ?", from).
		Where("created_at < ?", to).
		Count()
}

func (r *voteRepository) CountByVoterAndVendor(ctx context.Context, voterID, vendorID string, from, to time.Time) (int, error) {
	return r.db.ModelContext(ctx, (*models.Vote)(nil)).
		Where("voter_id = ?", voterID).
		Where("vendor_id = ?", vendorID).
		Where("created_at >= ?", from).
		Where("created_at < ?", to).
		Count()
}

func (r *voteRepository) GetCreatedAtSince(ctx context.Context, voterID string, since time.Time) ([]time.Time, error) {
	var createdAt []time.Time

	err := r.db.ModelContext(ctx, (*models.Vote)(nil)).
		Column("created_at").
		Where("voter_id = ?", voterID).
		Where("created_at >= ?", since).
		OrderExpr("created_at DESC").
		Select(&createdAt)

	return createdAt, err
}

func (r *voteRepository) GetManyByDistributionStatus(ctx context.Context, voterID string, status models.DistributionStatus) ([]*models.Vote, error) {
	votes := make([]*models.Vote, 0)

	err := r.db.ModelContext(ctx, &votes).
		Where("voter_id = ?", voterID).
		Where("distribution_status = ?", status).
		OrderExpr("created_at ASC").
		Select()

	return votes, err
}

// UpdateDistribution writes the distribution columns of vote. When from is
// given, the row only changes while its status is still one of from.
func (r *voteRepository) UpdateDistribution(ctx context.Context, vote *models.Vote, from ...models.DistributionStatus) (bool, error) {
	query := r.db.ModelContext(ctx, vote).
		Column("distribution_status", "distribution_tx_ref", "distribution_error", "distribution_attempts").
		WherePK()

	if len(from) > 0 {
		query = query.Where("distribution_status IN (?)", pg.In(from))
	}

	result, err := query.Update()
	if err != nil {
		return false, err
	}

	return result.RowsAffected() > 0, nil
}

func (r *voteRepository) GetHistory(ctx context.Context, voterID string, limit int) ([]*models.Vote, error) {
	votes := make([]*models.Vote, 0)

	err := r.db.ModelContext(ctx, &votes).
		Relation("Vendor").
		Where("vote.voter_id = ?", voterID).
		OrderExpr("vote.created_at DESC").
		Limit(limit).
		Select()

	return votes, err
}

func (r *voteRepository) GetVendorStats(ctx context.Context, vendorID string) (*models.VendorStats, error) {
	stats := &models.VendorStats{VendorID: vendorID}

	err := r.db.ModelContext(ctx, (*models.Vote)(nil)).
		ColumnExpr("count(*)").
		ColumnExpr("count(*) FILTER (WHERE kind = ?)", models.VoteKindVerified).
		ColumnExpr("count(DISTINCT voter_id)").
		ColumnExpr("coalesce(sum(token_reward), 0)").
		Where("vendor_id = ?", vendorID).
		Select(pg.Scan(&stats.TotalVotes, &stats.VerifiedVotes, &stats.UniqueVoters, &stats.TokensAwarded))
	if err != nil {
		return nil, err
	}

	stats.RegularVotes = stats.TotalVotes - stats.VerifiedVotes
	if stats.TotalVotes > 0 {
		stats.VerificationRate = float64(stats.VerifiedVotes) / float64(stats.TotalVotes)
	}

	return stats, nil
}

func (r *voteRepository) GetVoterIDsByDistributionStatus(ctx context.Context, status models.DistributionStatus) ([]string, error) {
	var voterIDs []string

	err := r.db.ModelContext(ctx, (*models.Vote)(nil)).
		ColumnExpr("DISTINCT voter_id").
		Where("distribution_status = ?", status).
		Select(&voterIDs)

	return voterIDs, err
}
