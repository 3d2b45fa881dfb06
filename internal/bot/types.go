package bot

import "context"

// TurnContext is the reply capability the transport hands the bot for one
// turn. Sending is fire-and-forget from the bot's perspective; transport
// errors surface as the turn's error.
type TurnContext interface {
	SendReply(ctx context.Context, text string) error
}

// TopIntent is the highest-confidence intent selected from a recognition result.
type TopIntent struct {
	Intent string
	Score  float64
}
