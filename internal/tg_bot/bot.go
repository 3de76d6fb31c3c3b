package tgbot

import (
	"vendor_rewards/configs"
	"vendor_rewards/internal/tg_bot/handlers"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type bot struct {
	handler handlers.CommandHandler
}

type Bot interface {
	Start(config configs.Bot, app configs.App, logger *zap.SugaredLogger)
}

func NewBot(handler handlers.CommandHandler) Bot {
	return &bot{handler: handler}
}

func (b *bot) Start(config configs.Bot, app configs.App, logger *zap.SugaredLogger) {
	logger.Info("creating bot")
	bot, updates, err := b.createBot(config, app)
	if err != nil {
		logger.Fatalf("failed to create bot: %v", err)
	}
	logger.Infow("bot created", "username", bot.Self.UserName)

	for update := range updates {
		for _, message := range b.handler.Handle(update) {
			if _, err := bot.Send(message); err != nil {
				logger.Errorf("failed to send message: %v", err)
			}
		}
	}
}

func (b *bot) createBot(config configs.Bot, app configs.App) (*tgbotapi.BotAPI, tgbotapi.UpdatesChannel, error) {
	bot, err := tgbotapi.NewBotAPI(config.Token)
	if err != nil {
		return nil, nil, err
	}

	bot.Debug = app.IsDevEnvironment()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = config.UpdateTimeout

	return bot, bot.GetUpdatesChan(u), nil
}
