package repositories

import (
	"context"

	"vendor_rewards/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type userRepository struct {
	repository
}

type UserRepository interface {
	EnsureExists(ctx context.Context, userID string) error
	Update(ctx context.Context, request *models.User) (*models.User, error)
	GetOne(ctx context.Context, userID string) (*models.User, error)
	GetOneByTelegramID(ctx context.Context, telegramID int64) (*models.User, error)
	AddBalance(ctx context.Context, userID string, amount int64) (int64, error)
	AdvanceStreak(ctx context.Context, userID string, streak int, day string) (bool, error)
	ResetStreak(ctx context.Context, userID string) error
	SetWallet(ctx context.Context, userID, walletAddress string) error
	GetPrecomputedStreak(ctx context.Context, userID, asOfDay, timezone string) (int, error)
	GetManyWithLapsedStreak(ctx context.Context, beforeDay string) ([]*models.User, error)
}

func NewUserRepository(db *pg.DB) UserRepository {
	return &userRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *userRepository) EnsureExists(ctx context.Context, userID string) error {
	_, err := r.db.ModelContext(ctx, &models.User{ID: userID}).
		OnConflict("(id) DO NOTHING").
		Insert()

	return err
}

func (r *userRepository) Update(ctx context.Context, request *models.User) (*models.User, error) {
	_, err := r.db.ModelContext(ctx, request).
		Column("telegram_id", "telegram_state").
		WherePK().
		Update()
	if err != nil {
		return nil, err
	}

	return r.GetOne(ctx, request.ID)
}

func (r *userRepository) GetOne(ctx context.Context, userID string) (*models.User, error) {
	user := &models.User{}

	err := r.db.ModelContext(ctx, user).
		Where("id = ?", userID).
		Select()
	if err != nil {
		return nil, noRows(err)
	}

	return user, nil
}

func (r *userRepository) GetOneByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	user := &models.User{}

	err := r.db.ModelContext(ctx, user).
		Where("telegram_id = ?", telegramID).
		Select()
	if err != nil {
		return nil, noRows(err)
	}

	return user, nil
}

func (r *userRepository) AddBalance(ctx context.Context, userID string, amount int64) (int64, error) {
	var balance int64

	_, err := r.db.ModelContext(ctx, (*models.User)(nil)).
		Set("token_balance = token_balance + ?", amount).
		Where("id = ?", userID).
		Returning("token_balance").
		Update(&balance)

	return balance, err
}

// AdvanceStreak stores streak for day unless the streak was already advanced
// on that day. It reports whether the row changed.
func (r *userRepository) AdvanceStreak(ctx context.Context, userID string, streak int, day string) (bool, error) {
	result, err := r.db.ModelContext(ctx, (*models.User)(nil)).
		Set("current_streak = ?", streak).
		Set("streak_updated_on = ?::date", day).
		Where("id = ?", userID).
		WhereGroup(func(q *pg.Query) (*pg.Query, error) {
			return q.Where("streak_updated_on IS NULL").WhereOr("streak_updated_on < ?::date", day), nil
		}).
		Update()
	if err != nil {
		return false, err
	}

	return result.RowsAffected() > 0, nil
}

func (r *userRepository) ResetStreak(ctx context.Context, userID string) error {
	_, err := r.db.ModelContext(ctx, (*models.User)(nil)).
		Set("current_streak = 0").
		Where("id = ?", userID).
		Update()

	return err
}

func (r *userRepository) SetWallet(ctx context.Context, userID, walletAddress string) error {
	_, err := r.db.ModelContext(ctx, (*models.User)(nil)).
		Set("wallet_address = ?", walletAddress).
		Where("id = ?", userID).
		Update()

	return err
}

// GetPrecomputedStreak asks the database for the streak ending at the latest
// voting day on or before asOfDay.
func (r *userRepository) GetPrecomputedStreak(ctx context.Context, userID, asOfDay, timezone string) (int, error) {
	var streak int

	_, err := r.db.QueryOneContext(ctx, pg.Scan(&streak), "SELECT user_streak(?, ?::date, ?)", userID, asOfDay, timezone)

	return streak, err
}

func (r *userRepository) GetManyWithLapsedStreak(ctx context.Context, beforeDay string) ([]*models.User, error) {
	users := make([]*models.User, 0)

	err := r.db.ModelContext(ctx, &users).
		Where("current_streak > 0").
		Where("streak_updated_on < ?::date", beforeDay).
		Select()

	return users, err
}
