package repositories

import (
	"context"
	"time"

	"vendor_rewards/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type proofRepository struct {
	repository
}

type ProofRepository interface {
	Create(ctx context.Context, request *models.Proof) error
	ContentHashUsedSince(ctx context.Context, contentHash string, since time.Time) (bool, error)
}

func NewProofRepository(db *pg.DB) ProofRepository {
	return &proofRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *proofRepository) Create(ctx context.Context, request *models.Proof) error {
	_, err := r.db.ModelContext(ctx, request).Insert()
	return err
}

func (r *proofRepository) ContentHashUsedSince(ctx context.Context, contentHash string, since time.Time) (bool, error) {
	return r.db.ModelContext(ctx, (*models.Proof)(nil)).
		Where("content_hash = ?", contentHash).
		Where("created_at >= ?", since).
		Exists()
}
