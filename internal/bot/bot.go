package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/ivkram/neuroguide-bot/internal/dispatch"
)

// Bot is the Telegram transport adapter: it decodes updates into events,
// hands them to the dispatcher, and renders replies back into Telegram
// messages. All conversation logic lives behind the dispatcher.
type Bot struct {
	api         *tgbotapi.BotAPI
	pollTimeout int
	logger      *zap.Logger
}

func New(token string, pollTimeout int, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &Bot{
		api:         api,
		pollTimeout: pollTimeout,
		logger:      logger,
	}, nil
}

// Start runs the long-poll loop, spawning one goroutine per update.
// Per-user ordering is enforced by the dispatcher's session locks, not
// here, so updates from different users never wait on each other.
func (b *Bot) Start(d *dispatch.Dispatcher) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.pollTimeout

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		go b.handleUpdate(d, update)
	}

	return nil
}

func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
}

func (b *Bot) handleUpdate(d *dispatch.Dispatcher, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Recovered from panic in update handler",
				zap.Any("panic", r),
				zap.Int("update_id", update.UpdateID))
		}
	}()

	ctx := context.Background()

	switch {
	case update.CallbackQuery != nil:
		cb := update.CallbackQuery

		// Telegram expects every callback query answered.
		if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
			b.logger.Warn("Failed to answer callback query", zap.Error(err))
		}

		d.HandleEvent(ctx, cb.From.ID, decodeCallback(cb.Data))

	case update.Message != nil:
		msg := update.Message
		if msg.From == nil {
			return
		}

		ev, ok := decodeMessage(msg)
		if !ok {
			return
		}

		d.HandleEvent(ctx, msg.From.ID, ev)
	}
}

// Send implements dispatch.Sender. The bot serves private chats, where
// the chat id equals the user id.
func (b *Bot) Send(ctx context.Context, userID int64, reply dispatch.Reply) error {
	if reply.PhotoRef != "" {
		photo := tgbotapi.NewPhoto(userID, tgbotapi.FileURL(reply.PhotoRef))
		if _, err := b.api.Send(photo); err != nil {
			return fmt.Errorf("failed to send photo: %w", err)
		}
		return nil
	}

	msg := tgbotapi.NewMessage(userID, reply.Text)
	if reply.Keyboard != nil {
		msg.ReplyMarkup = renderKeyboard(reply.Keyboard)
	}

	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

func renderKeyboard(kb dispatch.Keyboard) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(kb))
	for _, row := range kb {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, btn := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(btn.Label, btn.Data))
		}
		rows = append(rows, buttons)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
