package recognizer

import (
	"context"
	"fmt"

	"luis-intent-bot/internal/model"
	"luis-intent-bot/pkg/luis"
)

// luisRecognizer adapts a LUIS prediction client to the Recognizer interface.
type luisRecognizer struct {
	name   string
	client *luis.Client
}

var _ Recognizer = (*luisRecognizer)(nil)

// NewLUIS wraps a LUIS client as a named recognizer.
func NewLUIS(name string, client *luis.Client) Recognizer {
	return &luisRecognizer{name: name, client: client}
}

func (r *luisRecognizer) Name() string {
	return r.name
}

func (r *luisRecognizer) Recognize(ctx context.Context, activity model.Activity) (luis.RecognitionResult, error) {
	if activity.Text == "" {
		return luis.RecognitionResult{}, ErrEmptyUtterance
	}

	result, err := r.client.Predict(ctx, activity.Text)
	if err != nil {
		return luis.RecognitionResult{}, fmt.Errorf("recognizer %s: %w", r.name, err)
	}
	return result, nil
}
