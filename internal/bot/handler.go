package bot

import (
	"context"
	"fmt"

	"luis-intent-bot/internal/model"
)

// HandleTurn routes one inbound activity. Message activities go through the
// recognizer; every other activity type gets a generic acknowledgment.
// Exactly one reply is sent per completed turn.
func (h *Handler) HandleTurn(ctx context.Context, activity model.Activity, tc TurnContext) error {
	if activity.Type != model.ActivityTypeMessage {
		return tc.SendReply(ctx, fmt.Sprintf(ReplyEventFormat, activity.Type))
	}
	return h.processMessage(ctx, activity, tc)
}

// processMessage invokes the recognizer exactly once, selects the top intent
// and computes the entity summary. A recognizer failure fails the whole turn
// with no reply sent; the transport's turn error boundary owns it from there.
func (h *Handler) processMessage(ctx context.Context, activity model.Activity, tc TurnContext) error {
	result, err := h.recognizer.Recognize(ctx, activity)
	if err != nil {
		return fmt.Errorf("%s: recognizer invocation failed: %w", LogPrefixHandleTurn, err)
	}

	reply := ReplyNoIntents
	if top, ok := SelectTopIntent(result); ok {
		reply = fmt.Sprintf(ReplyTopIntentFormat, top.Intent, top.Score)
	}

	// The entity summary is computed every message turn but deliberately not
	// sent to the user; it surfaces in the logs only. Sending it would break
	// the one-reply-per-turn contract.
	summary := h.ExtractEntitySummary(ctx, result)
	h.l.Infof(ctx, "%s: %s", LogPrefixEntities, summary)

	return tc.SendReply(ctx, reply)
}
