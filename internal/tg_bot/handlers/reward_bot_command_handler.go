package handlers

import (
	"context"
	"strings"

	"vendor_rewards/internal/db/models"
	"vendor_rewards/internal/db/repositories"
	"vendor_rewards/internal/tg_bot/commands"
	tgbot "vendor_rewards/internal/tg_bot/extension"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type rewardBotCommandHandler struct {
	userRepository repositories.UserRepository
	logger         *zap.SugaredLogger

	commands []commands.Command
}

func NewRewardBotCommandHandler(
	userRepository repositories.UserRepository,
	logger *zap.SugaredLogger,
	commands []commands.Command,
) CommandHandler {
	return &rewardBotCommandHandler{
		userRepository: userRepository,
		logger:         logger,
		commands:       commands,
	}
}

func (h *rewardBotCommandHandler) Handle(update tgbotapi.Update) []tgbotapi.Chattable {
	h.logger.Info("received message")

	message := update.Message
	if message == nil || message.From == nil {
		h.logger.Warn("received unknown updates")
		return []tgbotapi.Chattable{}
	}

	chatID := message.Chat.ID
	if message.From.ID != chatID {
		return []tgbotapi.Chattable{}
	}

	ctx := context.Background()

	user, errMessage := h.findUser(ctx, message, chatID)
	if errMessage != nil {
		return []tgbotapi.Chattable{errMessage}
	}

	if message.IsCommand() {
		h.logger.Infow("received command", "command", message.Command())
		return h.tryToHandleCommand(ctx, message.Command(), user, chatID)
	} else if user.TelegramState.LastCommand != "" {
		h.logger.Infow("received subcommand", "command", user.TelegramState.LastCommand)
		return h.tryToHandleSubCommand(ctx, user.TelegramState.LastCommand, message.Text, user, chatID)
	}

	h.logger.Warn("received unknown message")
	return []tgbotapi.Chattable{}
}

// findUser resolves the sender. A first /start carries the user id from the
// app's deep link and binds the Telegram account to it.
func (h *rewardBotCommandHandler) findUser(ctx context.Context, message *tgbotapi.Message, chatID int64) (*models.User, tgbotapi.Chattable) {
	user, err := h.userRepository.GetOneByTelegramID(ctx, message.From.ID)
	if err != nil {
		h.logger.Errorw("failed to get user", "error", err)
		return nil, tgbot.DefaultErrorMessage(chatID)
	}
	if user != nil {
		return user, nil
	}

	userID := strings.TrimSpace(message.CommandArguments())
	if message.Command() != commands.StartCommandName || userID == "" {
		return nil, tgbotapi.NewMessage(chatID, "Open the bot from the link in the app to connect your account.")
	}

	user, err = h.userRepository.GetOne(ctx, userID)
	if err != nil {
		h.logger.Errorw("failed to get user", "error", err)
		return nil, tgbot.DefaultErrorMessage(chatID)
	}
	if user == nil {
		return nil, tgbotapi.NewMessage(chatID, "We could not find your account. Cast a vote in the app first.")
	}
	if user.TelegramID != 0 && user.TelegramID != message.From.ID {
		h.logger.Warnw("account already linked to another telegram user", "user_id", user.ID)
		return nil, tgbotapi.NewMessage(chatID, "This account is already linked to another Telegram user.")
	}

	user.TelegramID = message.From.ID

	user, err = h.userRepository.Update(ctx, user)
	if err != nil || user == nil {
		h.logger.Errorw("failed to update user", "error", err)
		return nil, tgbot.DefaultErrorMessage(chatID)
	}

	h.logger.Infow("telegram account linked", "user_id", user.ID)

	return user, nil
}

func (h *rewardBotCommandHandler) tryToHandleCommand(ctx context.Context, command string, user *models.User, chatID int64) []tgbotapi.Chattable {
	for _, handler := range h.commands {
		if handler.CanHandle(command) {
			user.TelegramState = models.TelegramState{LastCommand: command}

			updated, err := h.userRepository.Update(ctx, user)
			if err != nil {
				h.logger.Errorw("failed to update user", "error", err)
			} else if updated != nil {
				user = updated
			}

			return handler.Handle(ctx, command, user, chatID)
		}
	}

	h.logger.Warnw("received unknown command", "command", command)
	return []tgbotapi.Chattable{}
}

func (h *rewardBotCommandHandler) tryToHandleSubCommand(ctx context.Context, command, text string, user *models.User, chatID int64) []tgbotapi.Chattable {
	for _, handler := range h.commands {
		if handler.CanHandle(command) {
			responseMessages := handler.Handle(ctx, text, user, chatID)
			if responseMessages == nil {
				h.logger.Errorw("failed to handle subcommand", "command", command)
				break
			}

			return responseMessages
		}
	}

	h.logger.Errorf("received unknown subcommand for command: %s", command)
	return []tgbotapi.Chattable{}
}
