package commands

import (
	"context"
	"fmt"

	"vendor_rewards/internal/db/models"
	"vendor_rewards/internal/services"
	tgbot "vendor_rewards/internal/tg_bot/extension"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const StartCommandName = "start"

type StreakReader interface {
	CachedStreak(ctx context.Context, userID string) (int, error)
}

type startCommand struct {
	balanceService services.BalanceService
	streaks        StreakReader
	logger         *zap.SugaredLogger
}

func NewStartCommand(balanceService services.BalanceService, streaks StreakReader, logger *zap.SugaredLogger) Command {
	return &startCommand{
		balanceService: balanceService,
		streaks:        streaks,
		logger:         logger,
	}
}

func (c *startCommand) CanHandle(command string) bool {
	return command == StartCommandName
}

func (c *startCommand) Handle(ctx context.Context, _ string, user *models.User, chatID int64) []tgbotapi.Chattable {
	balance, err := c.balanceService.GetBalance(ctx, user.ID)
	if err != nil {
		c.logger.Errorw("failed to get balance", "user_id", user.ID, "error", err)
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chatID)}
	}

	streak, err := c.streaks.CachedStreak(ctx, user.ID)
	if err != nil {
		c.logger.Warnw("failed to get streak", "user_id", user.ID, "error", err)
	}

	wallet := "not connected"
	if user.HasWallet() {
		wallet = user.WalletAddress
	}

	text := fmt.Sprintf(`
Hi! Here is where you stand:

Balance: %d tokens
Streak: %d days
Wallet: %s

1. /connect_wallet - connect a wallet to receive your tokens.
2. /retry_distributions - resend tokens whose transfer failed.
3. /history - your latest votes.
`, balance, streak, wallet)

	return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, text)}
}
