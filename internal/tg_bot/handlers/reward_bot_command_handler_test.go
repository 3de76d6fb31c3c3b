package handlers

import (
	"context"
	"testing"

	"vendor_rewards/internal/db/models"
	mock_repositories "vendor_rewards/internal/db/repositories/mocks"
	"vendor_rewards/internal/tg_bot/commands"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type recordingCommand struct {
	name  string
	texts []string
	users []*models.User
}

func (c *recordingCommand) CanHandle(command string) bool {
	return command == c.name
}

func (c *recordingCommand) Handle(_ context.Context, text string, user *models.User, chatID int64) []tgbotapi.Chattable {
	c.texts = append(c.texts, text)
	c.users = append(c.users, user)
	return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, "handled "+text)}
}

func commandUpdate(telegramID int64, text string, commandLength int) tgbotapi.Update {
	message := &tgbotapi.Message{
		From: &tgbotapi.User{ID: telegramID},
		Chat: &tgbotapi.Chat{ID: telegramID},
		Text: text,
	}
	if commandLength > 0 {
		message.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: commandLength}}
	}
	return tgbotapi.Update{Message: message}
}

func newHandler(t *testing.T, cmds ...commands.Command) (CommandHandler, *mock_repositories.MockUserRepository) {
	ctrl := gomock.NewController(t)
	users := mock_repositories.NewMockUserRepository(ctrl)
	return NewRewardBotCommandHandler(users, zap.NewNop().Sugar(), cmds), users
}

func textOf(t *testing.T, message tgbotapi.Chattable) string {
	t.Helper()

	config, ok := message.(tgbotapi.MessageConfig)
	require.True(t, ok)
	return config.Text
}

func TestHandle_StartLinksAccount(t *testing.T) {
	start := &recordingCommand{name: commands.StartCommandName}
	handler, users := newHandler(t, start)

	users.EXPECT().GetOneByTelegramID(gomock.Any(), int64(42)).Return(nil, nil)
	users.EXPECT().GetOne(gomock.Any(), "user-1").Return(&models.User{ID: "user-1"}, nil)
	users.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user *models.User) (*models.User, error) {
		assert.Equal(t, int64(42), user.TelegramID)
		return user, nil
	}).Times(2)

	messages := handler.Handle(commandUpdate(42, "/start user-1", 6))

	require.Len(t, messages, 1)
	assert.Equal(t, "handled start", textOf(t, messages[0]))
	require.Len(t, start.users, 1)
	assert.Equal(t, "user-1", start.users[0].ID)
}

func TestHandle_UnknownSenderWithoutDeepLink(t *testing.T) {
	start := &recordingCommand{name: commands.StartCommandName}
	handler, users := newHandler(t, start)

	users.EXPECT().GetOneByTelegramID(gomock.Any(), int64(42)).Return(nil, nil)

	messages := handler.Handle(commandUpdate(42, "/start", 6))

	require.Len(t, messages, 1)
	assert.Contains(t, textOf(t, messages[0]), "link in the app")
	assert.Empty(t, start.texts)
}

func TestHandle_AccountLinkedElsewhere(t *testing.T) {
	handler, users := newHandler(t, &recordingCommand{name: commands.StartCommandName})

	users.EXPECT().GetOneByTelegramID(gomock.Any(), int64(42)).Return(nil, nil)
	users.EXPECT().GetOne(gomock.Any(), "user-1").Return(&models.User{ID: "user-1", TelegramID: 7}, nil)

	messages := handler.Handle(commandUpdate(42, "/start user-1", 6))

	require.Len(t, messages, 1)
	assert.Contains(t, textOf(t, messages[0]), "already linked")
}

func TestHandle_FollowUpGoesToLastCommand(t *testing.T) {
	connect := &recordingCommand{name: "connect_wallet"}
	handler, users := newHandler(t, connect)

	user := &models.User{ID: "user-1", TelegramID: 42, TelegramState: models.TelegramState{LastCommand: "connect_wallet", LastCommandState: "waiting_for_wallet"}}
	users.EXPECT().GetOneByTelegramID(gomock.Any(), int64(42)).Return(user, nil)

	messages := handler.Handle(commandUpdate(42, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", 0))

	require.Len(t, messages, 1)
	assert.Equal(t, []string{"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"}, connect.texts)
}

func TestHandle_IgnoresGroupChats(t *testing.T) {
	handler, _ := newHandler(t)

	update := commandUpdate(42, "/start", 6)
	update.Message.Chat.ID = -100

	assert.Empty(t, handler.Handle(update))
}
