package notification

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/fatimaaziz27/busbooker/internal/domain"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

// TelegramNotifier posts booking activity to an operations chat. It is
// a no-op when the bot token or chat id is not configured.
type TelegramNotifier struct {
	bot      *tgbotapi.BotAPI
	chatID   int64
	strategy retry.Strategy
	logger   logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram is not configured, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{
		bot:    bot,
		chatID: chatID,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
		logger: logger,
	}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking created*\n\n"+"Booking: %s\n"+"Passenger: %s\n"+"Route: %s (%s)\n"+"Seats: %d\n"+"Total fare: %d",
		booking.ID, booking.Name, booking.Route, booking.Time, booking.Seats, booking.TotalFare,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking cancelled*\n\n"+"Booking: %s\n"+"Passenger: %s\n"+"Route: %s (%s)\n"+"Seats released: %d",
		booking.ID, booking.Name, booking.Route, booking.Time, booking.Seats,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	err := retry.Do(func() error {
		_, err := n.bot.Send(msg)
		return err
	}, n.strategy)
	if err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
