package repositories

import (
	"context"

	"vendor_rewards/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type vendorRepository struct {
	repository
}

type VendorRepository interface {
	GetOne(ctx context.Context, vendorID string) (*models.Vendor, error)
}

func NewVendorRepository(db *pg.DB) VendorRepository {
	return &vendorRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *vendorRepository) GetOne(ctx context.Context, vendorID string) (*models.Vendor, error) {
	vendor := &models.Vendor{}

	err := r.db.ModelContext(ctx, vendor).
		Where("id = ?", vendorID).
		Select()
	if err != nil {
		return nil, noRows(err)
	}

	return vendor, nil
}
