package repositories

import (
	"errors"

	"github.com/go-pg/pg/v10"
)

//go:generate mockgen -source=user_repository.go -destination=mocks/user_repository.go -package=mock_repositories
//go:generate mockgen -source=vote_repository.go -destination=mocks/vote_repository.go -package=mock_repositories
//go:generate mockgen -source=proof_repository.go -destination=mocks/proof_repository.go -package=mock_repositories
//go:generate mockgen -source=vendor_repository.go -destination=mocks/vendor_repository.go -package=mock_repositories

type repository struct {
	db *pg.DB
}

// noRows maps a missing row onto the (nil, nil) result callers check for.
func noRows(err error) error {
	if errors.Is(err, pg.ErrNoRows) {
		return nil
	}
	return err
}
