package commands

import (
	"context"

	"vendor_rewards/internal/db/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Command interface {
	CanHandle(command string) bool
	Handle(ctx context.Context, text string, user *models.User, chatID int64) []tgbotapi.Chattable
}
