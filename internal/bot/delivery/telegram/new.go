package telegram

import (
	"context"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"

	"luis-intent-bot/config"
	"luis-intent-bot/internal/bot"
	pkgLog "luis-intent-bot/pkg/log"
	pkgTelegram "luis-intent-bot/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l         pkgLog.Logger
	turns     *bot.Handler
	sender    MessageSender
	security  *SecurityValidator
	processed *lru.Cache[int64, struct{}]
}

// MessageSender is the outbound side of the transport. *pkgTelegram.Bot
// satisfies it; tests substitute a capture.
type MessageSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, turns *bot.Handler, sender MessageSender, cfg config.WebhookConfig) (Handler, error) {
	dedupeSize := cfg.DedupeSize
	if dedupeSize <= 0 {
		dedupeSize = 1024
	}
	processed, err := lru.New[int64, struct{}](dedupeSize)
	if err != nil {
		return nil, err
	}

	return &handler{
		l:         l,
		turns:     turns,
		sender:    sender,
		security:  NewSecurityValidator(cfg),
		processed: processed,
	}, nil
}

var _ MessageSender = (*pkgTelegram.Bot)(nil)
