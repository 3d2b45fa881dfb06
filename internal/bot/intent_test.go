package bot_test

import (
	"testing"

	"luis-intent-bot/internal/bot"
	"luis-intent-bot/pkg/luis"
)

func TestSelectTopIntent(t *testing.T) {
	tests := []struct {
		name    string
		intents []luis.IntentScore
		want    bot.TopIntent
		wantOK  bool
	}{
		{
			name: "highest score wins",
			intents: []luis.IntentScore{
				{Intent: "Cancel", Score: 0.12},
				{Intent: "BookFlight", Score: 0.87},
				{Intent: "None", Score: 0.01},
			},
			want:   bot.TopIntent{Intent: "BookFlight", Score: 0.87},
			wantOK: true,
		},
		{
			name: "tie breaks to first in recognizer order",
			intents: []luis.IntentScore{
				{Intent: "BookFlight", Score: 0.5},
				{Intent: "Cancel", Score: 0.5},
			},
			want:   bot.TopIntent{Intent: "BookFlight", Score: 0.5},
			wantOK: true,
		},
		{
			name:    "no intents",
			intents: nil,
			wantOK:  false,
		},
		{
			name: "none sentinel on top",
			intents: []luis.IntentScore{
				{Intent: "None", Score: 0.99},
				{Intent: "BookFlight", Score: 0.3},
			},
			wantOK: false,
		},
		{
			name: "none sentinel loses to real intent",
			intents: []luis.IntentScore{
				{Intent: "None", Score: 0.2},
				{Intent: "BookFlight", Score: 0.3},
			},
			want:   bot.TopIntent{Intent: "BookFlight", Score: 0.3},
			wantOK: true,
		},
		{
			name: "single intent",
			intents: []luis.IntentScore{
				{Intent: "Greeting", Score: 0.42},
			},
			want:   bot.TopIntent{Intent: "Greeting", Score: 0.42},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := bot.SelectTopIntent(luis.RecognitionResult{Intents: tt.intents})
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if ok && got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestSelectTopIntent_Deterministic(t *testing.T) {
	result := luis.RecognitionResult{Intents: []luis.IntentScore{
		{Intent: "A", Score: 0.7},
		{Intent: "B", Score: 0.7},
		{Intent: "C", Score: 0.7},
	}}

	first, _ := bot.SelectTopIntent(result)
	for i := 0; i < 10; i++ {
		got, _ := bot.SelectTopIntent(result)
		if got != first {
			t.Fatalf("selection not deterministic: %+v vs %+v", got, first)
		}
	}
	if first.Intent != "A" {
		t.Errorf("expected first-encountered intent to win the tie, got %q", first.Intent)
	}
}
