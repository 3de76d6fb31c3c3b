package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vendor_rewards/internal"
	"vendor_rewards/internal/db/models"
	"vendor_rewards/internal/db/repositories"
	"vendor_rewards/internal/services"
	tgbot "vendor_rewards/internal/tg_bot/extension"
	"vendor_rewards/internal/wallet"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	connectWalletCommandName = "connect_wallet"

	waitingForWalletState = "waiting_for_wallet"
)

type connectWalletCommand struct {
	userRepository      repositories.UserRepository
	distributionService services.DistributionService
	logger              *zap.SugaredLogger
}

func NewConnectWalletCommand(
	userRepository repositories.UserRepository,
	distributionService services.DistributionService,
	logger *zap.SugaredLogger,
) Command {
	return &connectWalletCommand{
		userRepository:      userRepository,
		distributionService: distributionService,
		logger:              logger,
	}
}

func (c *connectWalletCommand) CanHandle(command string) bool {
	return command == connectWalletCommandName
}

func (c *connectWalletCommand) Handle(ctx context.Context, text string, user *models.User, chatID int64) []tgbotapi.Chattable {
	if text == connectWalletCommandName {
		user.TelegramState.LastCommandState = waitingForWalletState
		_ = c.updateUser(ctx, user)

		return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, "Send me the address of your wallet. It starts with 0x.")}
	}

	switch user.TelegramState.LastCommandState {
	case waitingForWalletState:
		return c.handleWaitingForWalletState(ctx, strings.TrimSpace(text), user, chatID)
	default:
		c.logger.Errorf("user has unknown state: %s", user.TelegramState.LastCommandState)
		return nil
	}
}

func (c *connectWalletCommand) handleWaitingForWalletState(ctx context.Context, address string, user *models.User, chatID int64) []tgbotapi.Chattable {
	summary, err := c.distributionService.ConnectWallet(ctx, user.ID, address)
	if errors.Is(err, wallet.ErrInvalidAddress) {
		c.logger.Warnw("user sent invalid wallet", "user_id", user.ID, "wallet", address)
		return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, "That does not look like a wallet address. Try again.")}
	}
	if err != nil {
		c.logger.Errorw("failed to connect wallet", "user_id", user.ID, "error", err)
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chatID)}
	}

	user.TelegramState = models.TelegramState{}
	_ = c.updateUser(ctx, user)

	return []tgbotapi.Chattable{
		tgbotapi.NewMessage(chatID, fmt.Sprintf("Wallet %s connected.", internal.ShortAddress(address))),
		tgbotapi.NewMessage(chatID, tgbot.FormatSummary(summary)),
	}
}

func (c *connectWalletCommand) updateUser(ctx context.Context, user *models.User) error {
	if _, err := c.userRepository.Update(ctx, user); err != nil {
		c.logger.Errorw("failed to update user", "error", err)
		return err
	}
	return nil
}
