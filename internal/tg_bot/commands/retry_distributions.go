package commands

import (
	"context"
	"errors"

	"vendor_rewards/internal/db/models"
	"vendor_rewards/internal/services"
	tgbot "vendor_rewards/internal/tg_bot/extension"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const retryDistributionsCommandName = "retry_distributions"

type retryDistributionsCommand struct {
	distributionService services.DistributionService
	logger              *zap.SugaredLogger
}

func NewRetryDistributionsCommand(distributionService services.DistributionService, logger *zap.SugaredLogger) Command {
	return &retryDistributionsCommand{
		distributionService: distributionService,
		logger:              logger,
	}
}

func (c *retryDistributionsCommand) CanHandle(command string) bool {
	return command == retryDistributionsCommandName
}

func (c *retryDistributionsCommand) Handle(ctx context.Context, _ string, user *models.User, chatID int64) []tgbotapi.Chattable {
	summary, err := c.distributionService.RetryFailed(ctx, user.ID)
	if errors.Is(err, services.ErrNoWallet) {
		return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, "Connect a wallet first with /connect_wallet.")}
	}
	if err != nil {
		c.logger.Errorw("failed to retry distributions", "user_id", user.ID, "error", err)
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chatID)}
	}

	return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, tgbot.FormatSummary(summary))}
}
