package models

import "time"

type TelegramState struct {
	LastCommand      string
	LastCommandState string
}

// User holds the reward state of a voter. The row is the source of truth for
// balance and streak; cache entries only mirror it.
type User struct {
	ID              string        `json:"id" pg:",pk"`
	TelegramID      int64         `json:"telegram_id,omitempty" pg:",unique"`
	TokenBalance    int64         `json:"token_balance" pg:",notnull,use_zero,default:0"`
	CurrentStreak   int           `json:"current_streak" pg:",notnull,use_zero,default:0"`
	StreakUpdatedOn string        `json:"streak_updated_on,omitempty" pg:"type:date"`
	WalletAddress   string        `json:"wallet_address,omitempty"`
	TelegramState   TelegramState `json:"telegram_state"`
	CreatedAt       time.Time     `json:"created_at" pg:"default:now()"`
}

func (u *User) HasWallet() bool {
	return u.WalletAddress != ""
}
