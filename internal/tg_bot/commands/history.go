package commands

import (
	"context"
	"strings"

	"vendor_rewards/internal/db/models"
	"vendor_rewards/internal/services"
	tgbot "vendor_rewards/internal/tg_bot/extension"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const historyCommandName = "history"

type historyCommand struct {
	voteService services.VoteService
	limit       int
	logger      *zap.SugaredLogger
}

func NewHistoryCommand(voteService services.VoteService, limit int, logger *zap.SugaredLogger) Command {
	return &historyCommand{
		voteService: voteService,
		limit:       limit,
		logger:      logger,
	}
}

func (c *historyCommand) CanHandle(command string) bool {
	return command == historyCommandName
}

func (c *historyCommand) Handle(ctx context.Context, _ string, user *models.User, chatID int64) []tgbotapi.Chattable {
	votes, err := c.voteService.History(ctx, user.ID, c.limit)
	if err != nil {
		c.logger.Errorw("failed to get history", "user_id", user.ID, "error", err)
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chatID)}
	}

	if len(votes) == 0 {
		return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, "You have not voted yet.")}
	}

	lines := make([]string, 0, len(votes))
	for _, vote := range votes {
		lines = append(lines, tgbot.FormatVote(vote))
	}

	return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, strings.Join(lines, "\n"))}
}
