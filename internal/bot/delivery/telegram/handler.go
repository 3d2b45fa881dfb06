package telegram

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"luis-intent-bot/internal/model"
	pkgResponse "luis-intent-bot/pkg/response"
	pkgTelegram "luis-intent-bot/pkg/telegram"
)

// turnFailureNotice is the best-effort message sent when a turn aborts.
const turnFailureNotice = "Something went wrong while processing your message. Please try again."

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the turn in a
// background goroutine to avoid the Telegram webhook timeout (Telegram
// expects a response within a few seconds; the LUIS call can be slow).
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.security.ValidateSecretToken(c.GetHeader("X-Telegram-Bot-Api-Secret-Token")); err != nil {
		h.l.Warnf(ctx, "telegram handler: %v", err)
		pkgResponse.Unauthorized(c)
		return
	}
	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "telegram handler: %v", err)
		pkgResponse.Forbidden(c)
		return
	}
	if err := h.security.CheckRateLimit(extractIP(c.Request)); err != nil {
		h.l.Warnf(ctx, "telegram handler: %v", err)
		pkgResponse.TooManyRequests(c)
		return
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Telegram redelivers updates that were not acknowledged fast enough;
	// a redelivered update must not trigger a second recognizer call.
	if _, seen := h.processed.Get(update.UpdateID); seen {
		pkgResponse.OK(c, map[string]string{"status": "duplicate"})
		return
	}
	h.processed.Add(update.UpdateID, struct{}{})

	activity, chatID, ok := toActivity(update)
	if !ok {
		// No chat to reply into: nothing the turn handler can do with it.
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Critical: process in goroutine, return 200 immediately to Telegram
	go func() {
		// Detach from HTTP request context (which gets cancelled after response)
		bgCtx := context.Background()
		tc := &turnContext{sender: h.sender, chatID: chatID}
		if err := h.turns.HandleTurn(bgCtx, activity, tc); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: turn %s failed: %v", activity.ID, err)
			// Best-effort error notification to user
			_ = h.sender.SendMessage(bgCtx, chatID, turnFailureNotice)
		}
	}()

	// Telegram acknowledged immediately
	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// toActivity converts a Telegram update into an activity plus the chat the
// reply goes to. Returns ok=false when the update carries no resolvable chat.
func toActivity(update pkgTelegram.Update) (model.Activity, int64, bool) {
	activity := model.Activity{
		ID:        uuid.NewString(),
		ChannelID: "telegram",
		Timestamp: time.Now(),
	}

	switch {
	case update.Message != nil && update.Message.Chat != nil:
		activity.Type = model.ActivityTypeMessage
		activity.Text = update.Message.Text
		if update.Message.From != nil {
			activity.FromID = fmt.Sprintf("telegram_%d", update.Message.From.ID)
		}
		return activity, update.Message.Chat.ID, true

	case update.EditedMessage != nil && update.EditedMessage.Chat != nil:
		activity.Type = model.ActivityTypeMessageUpdate
		return activity, update.EditedMessage.Chat.ID, true

	case update.MyChatMember != nil && update.MyChatMember.Chat != nil:
		activity.Type = model.ActivityTypeConversationUpdate
		return activity, update.MyChatMember.Chat.ID, true

	default:
		activity.Type = model.ActivityTypeEvent
		return activity, 0, false
	}
}

// turnContext adapts the Telegram sender to the bot's reply capability for
// one turn.
type turnContext struct {
	sender MessageSender
	chatID int64
}

func (tc *turnContext) SendReply(ctx context.Context, text string) error {
	return tc.sender.SendMessage(ctx, tc.chatID, text)
}
