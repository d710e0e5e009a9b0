package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/JAL-Virtual/jal-bookings-events-sub000/internal/domain"
)

// TelegramNotifier posts booking activity to the staff ops channel. With no
// token or chat id configured it stays silent.
type TelegramNotifier struct {
	bot       *tgbotapi.BotAPI
	opsChatID int64
	logger    logger.Logger
}

func NewTelegramNotifier(token string, opsChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || opsChatID == 0 {
		logger.Warn("telegram bot token or ops chat id is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, opsChatID: opsChatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, booking *domain.Booking, event *domain.Event) {
	text := fmt.Sprintf(
		"*New booking*\n\nEvent: %s (%s-%s)\nDate (UTC): %s\nPilot: %s%s",
		event.Name, event.DepartureICAO, event.ArrivalICAO,
		event.EventDate.Format("02.01.2006 15:04"),
		booking.PilotName, slotLine(booking),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, booking *domain.Booking, event *domain.Event) {
	text := fmt.Sprintf(
		"*Booking cancelled*\n\nEvent: %s (%s-%s)\nDate (UTC): %s\nPilot: %s%s",
		event.Name, event.DepartureICAO, event.ArrivalICAO,
		event.EventDate.Format("02.01.2006 15:04"),
		booking.PilotName, slotLine(booking),
	)
	n.send(ctx, text)
}

func slotLine(b *domain.Booking) string {
	if b.SlotID == nil {
		return ""
	}
	return fmt.Sprintf("\nSlot: %s", *b.SlotID)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.opsChatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.opsChatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.opsChatID),
			logger.String("error", err.Error()),
		)
	}
}
