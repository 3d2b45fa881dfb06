package recognizer

import (
	"context"

	"luis-intent-bot/internal/model"
	"luis-intent-bot/pkg/luis"
)

// Recognizer maps one message activity to a recognition result.
type Recognizer interface {
	// Recognize invokes the NLU service for the given activity.
	// Cancellation of ctx must abort the underlying call.
	Recognize(ctx context.Context, activity model.Activity) (luis.RecognitionResult, error)

	// Name returns the binding name this recognizer was registered under.
	Name() string
}
