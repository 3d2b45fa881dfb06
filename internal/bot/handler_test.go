package bot_test

import (
	"context"
	"errors"
	"testing"

	"luis-intent-bot/internal/bot"
	"luis-intent-bot/internal/model"
	"luis-intent-bot/internal/recognizer"
	"luis-intent-bot/pkg/luis"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockRecognizer struct {
	result luis.RecognitionResult
	err    error
	calls  int
}

func (m *mockRecognizer) Recognize(ctx context.Context, activity model.Activity) (luis.RecognitionResult, error) {
	m.calls++
	return m.result, m.err
}

func (m *mockRecognizer) Name() string { return "QuizApp" }

type mockTurnContext struct {
	replies []string
	sendErr error
}

func (m *mockTurnContext) SendReply(ctx context.Context, text string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.replies = append(m.replies, text)
	return nil
}

// ── Tests ──────────────────────────────────────────────────────────────────

func messageActivity(text string) model.Activity {
	return model.Activity{ID: "act-1", Type: model.ActivityTypeMessage, Text: text, ChannelID: "telegram"}
}

func TestHandleTurn_NonMessageActivity(t *testing.T) {
	tests := []struct {
		activityType model.ActivityType
		wantReply    string
	}{
		{model.ActivityTypeConversationUpdate, "conversationUpdate event detected"},
		{model.ActivityTypeMessageUpdate, "messageUpdate event detected"},
		{model.ActivityTypeEvent, "event event detected"},
	}

	for _, tt := range tests {
		t.Run(string(tt.activityType), func(t *testing.T) {
			rec := &mockRecognizer{}
			tc := &mockTurnContext{}
			h := bot.New(&mockLogger{}, rec)

			err := h.HandleTurn(context.Background(), model.Activity{Type: tt.activityType}, tc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(tc.replies) != 1 {
				t.Fatalf("expected exactly 1 reply, got %d", len(tc.replies))
			}
			if tc.replies[0] != tt.wantReply {
				t.Errorf("expected reply %q, got %q", tt.wantReply, tc.replies[0])
			}
			if rec.calls != 0 {
				t.Errorf("recognizer must not be invoked for non-message activities, got %d calls", rec.calls)
			}
		})
	}
}

func TestHandleTurn_MessageInvokesRecognizerOnce(t *testing.T) {
	rec := &mockRecognizer{result: luis.RecognitionResult{
		Intents: []luis.IntentScore{{Intent: "BookFlight", Score: 0.87}},
	}}
	tc := &mockTurnContext{}
	h := bot.New(&mockLogger{}, rec)

	if err := h.HandleTurn(context.Background(), messageActivity("book a flight"), tc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.calls != 1 {
		t.Errorf("expected exactly 1 recognizer call, got %d", rec.calls)
	}
	if len(tc.replies) != 1 {
		t.Fatalf("expected exactly 1 reply, got %d", len(tc.replies))
	}
	if tc.replies[0] != "==>LUIS Top Scoring Intent: BookFlight, Score: 0.87\n" {
		t.Errorf("unexpected reply: %q", tc.replies[0])
	}
}

func TestHandleTurn_NoIntents(t *testing.T) {
	tests := []struct {
		name   string
		result luis.RecognitionResult
	}{
		{"empty result", luis.RecognitionResult{}},
		{"none sentinel on top", luis.RecognitionResult{
			Intents: []luis.IntentScore{
				{Intent: "None", Score: 0.95},
				{Intent: "BookFlight", Score: 0.10},
			},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := &mockTurnContext{}
			h := bot.New(&mockLogger{}, &mockRecognizer{result: tt.result})

			if err := h.HandleTurn(context.Background(), messageActivity("whatever"), tc); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(tc.replies) != 1 || tc.replies[0] != "No LUIS intents were found" {
				t.Errorf("expected the no-intents reply, got %v", tc.replies)
			}
		})
	}
}

func TestHandleTurn_RecognizerFailureAbortsTurn(t *testing.T) {
	recErr := errors.New("prediction API unreachable")
	tc := &mockTurnContext{}
	h := bot.New(&mockLogger{}, &mockRecognizer{err: recErr})

	err := h.HandleTurn(context.Background(), messageActivity("hello"), tc)
	if !errors.Is(err, recErr) {
		t.Fatalf("expected the recognizer error to propagate, got: %v", err)
	}
	if len(tc.replies) != 0 {
		t.Errorf("no reply must be sent on a failed turn, got %v", tc.replies)
	}
}

func TestHandleTurn_Idempotent(t *testing.T) {
	rec := &mockRecognizer{result: luis.RecognitionResult{
		Intents: []luis.IntentScore{{Intent: "BookFlight", Score: 0.87}},
		Entities: luis.EntityPayload{
			{Key: "a", Value: []byte(`{"text":"x","Appointment":[{"type":"Meeting","score":0.9}]}`)},
		},
	}}
	tc := &mockTurnContext{}
	h := bot.New(&mockLogger{}, rec)

	activity := messageActivity("book a flight")
	for i := 0; i < 2; i++ {
		if err := h.HandleTurn(context.Background(), activity, tc); err != nil {
			t.Fatalf("turn %d: unexpected error: %v", i, err)
		}
	}

	if len(tc.replies) != 2 {
		t.Fatalf("expected 2 replies, got %d", len(tc.replies))
	}
	if tc.replies[0] != tc.replies[1] {
		t.Errorf("replies differ across identical turns: %q vs %q", tc.replies[0], tc.replies[1])
	}
}

func TestNewFromRegistry(t *testing.T) {
	reg := recognizer.NewRegistry(&mockRecognizer{})

	t.Run("known binding", func(t *testing.T) {
		h, err := bot.NewFromRegistry(&mockLogger{}, reg, "QuizApp")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if h == nil {
			t.Fatal("expected a handler")
		}
	})

	t.Run("missing binding", func(t *testing.T) {
		h, err := bot.NewFromRegistry(&mockLogger{}, reg, "NoSuchApp")
		if !errors.Is(err, bot.ErrNotConfigured) {
			t.Fatalf("expected ErrNotConfigured, got: %v", err)
		}
		if !errors.Is(err, recognizer.ErrBindingNotFound) {
			t.Fatalf("expected the binding error in the chain, got: %v", err)
		}
		if h != nil {
			t.Fatal("handler must not be constructed with a missing binding")
		}
	})
}
