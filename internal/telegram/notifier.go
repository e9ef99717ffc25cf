package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"weeks-worth/internal/shared"
)

// maxMessageLength keeps the header plus the message under Telegram's
// 4096 character limit.
const maxMessageLength = 3500

// Sender is the part of *tgbotapi.BotAPI the notifier uses.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier forwards user messages to the administrator's Telegram chat.
type Notifier struct {
	api     Sender
	adminID int64
	logger  *zap.Logger
}

// NewNotifier creates a Notifier. A nil api or a zero adminID yields a
// Notifier that reports every message as not sent.
func NewNotifier(api Sender, adminID int64, logger *zap.Logger) *Notifier {
	return &Notifier{api: api, adminID: adminID, logger: logger}
}

// NewNotifierFromToken authorizes against the Telegram API with token.
func NewNotifierFromToken(token string, adminID int64, logger *zap.Logger) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}
	logger.Info("authorized on telegram", zap.String("account", bot.Self.UserName))
	return NewNotifier(bot, adminID, logger), nil
}

// Enabled reports whether messages can be delivered.
func (n *Notifier) Enabled() bool {
	return n.api != nil && n.adminID != 0
}

// MessageMe sends message to the administrator on behalf of fromEmail and
// reports whether it was delivered.
func (n *Notifier) MessageMe(ctx context.Context, fromEmail, message string) (bool, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return false, fmt.Errorf("%w: message is required", shared.ErrValidation)
	}
	if len(message) > maxMessageLength {
		return false, fmt.Errorf("%w: message must be at most %d characters", shared.ErrValidation, maxMessageLength)
	}
	if !n.Enabled() {
		n.logger.Warn("message dropped, telegram is not configured", zap.String("from", fromEmail))
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	text := fmt.Sprintf("%s has sent you a message from A Week's Worth\n\n%s", fromEmail, message)
	if _, err := n.api.Send(tgbotapi.NewMessage(n.adminID, text)); err != nil {
		return false, fmt.Errorf("failed to send telegram message: %w", err)
	}

	n.logger.Info("forwarded message to admin", zap.String("from", fromEmail))
	return true, nil
}
