package recognizer_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"luis-intent-bot/config"
	"luis-intent-bot/internal/model"
	"luis-intent-bot/internal/recognizer"
	"luis-intent-bot/pkg/luis"
)

func TestInitializeRecognizers(t *testing.T) {
	validApp := config.LUISAppConfig{
		Name:            "QuizApp",
		Enabled:         true,
		AppID:           "app-id",
		Endpoint:        "https://westus.api.cognitive.microsoft.com",
		SubscriptionKey: "key",
	}

	t.Run("nil config", func(t *testing.T) {
		if _, err := recognizer.InitializeRecognizers(nil); err == nil {
			t.Fatal("expected error for nil config")
		}
	})

	t.Run("no bindings", func(t *testing.T) {
		_, err := recognizer.InitializeRecognizers(&config.LUISConfig{})
		if !errors.Is(err, recognizer.ErrNoBindingsConfigured) {
			t.Fatalf("expected ErrNoBindingsConfigured, got: %v", err)
		}
	})

	t.Run("all bindings disabled", func(t *testing.T) {
		disabled := validApp
		disabled.Enabled = false
		_, err := recognizer.InitializeRecognizers(&config.LUISConfig{Apps: []config.LUISAppConfig{disabled}})
		if !errors.Is(err, recognizer.ErrNoBindingsConfigured) {
			t.Fatalf("expected ErrNoBindingsConfigured, got: %v", err)
		}
	})

	t.Run("missing subscription key", func(t *testing.T) {
		broken := validApp
		broken.SubscriptionKey = ""
		_, err := recognizer.InitializeRecognizers(&config.LUISConfig{Apps: []config.LUISAppConfig{broken}})
		if err == nil {
			t.Fatal("expected error for incomplete binding")
		}
	})

	t.Run("duplicate binding name", func(t *testing.T) {
		_, err := recognizer.InitializeRecognizers(&config.LUISConfig{Apps: []config.LUISAppConfig{validApp, validApp}})
		if err == nil {
			t.Fatal("expected error for duplicate binding")
		}
	})

	t.Run("resolve known and unknown", func(t *testing.T) {
		reg, err := recognizer.InitializeRecognizers(&config.LUISConfig{
			Binding: "QuizApp",
			Apps:    []config.LUISAppConfig{validApp},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		r, err := reg.Resolve("QuizApp")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Name() != "QuizApp" {
			t.Errorf("unexpected binding name: %q", r.Name())
		}

		if _, err := reg.Resolve("NoSuchApp"); !errors.Is(err, recognizer.ErrBindingNotFound) {
			t.Fatalf("expected ErrBindingNotFound, got: %v", err)
		}
	})
}

func TestLUISRecognizer_Recognize(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"query":"hi","intents":[{"intent":"Greeting","score":0.6}],"entities":{}}`))
	}))
	defer ts.Close()

	r := recognizer.NewLUIS("QuizApp", luis.NewClient(ts.URL, "app-id", "key"))

	t.Run("message with text", func(t *testing.T) {
		result, err := r.Recognize(context.Background(), model.Activity{
			Type: model.ActivityTypeMessage,
			Text: "hi",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Intents) != 1 || result.Intents[0].Intent != "Greeting" {
			t.Errorf("unexpected result: %+v", result)
		}
	})

	t.Run("empty utterance rejected before network call", func(t *testing.T) {
		_, err := r.Recognize(context.Background(), model.Activity{Type: model.ActivityTypeMessage})
		if !errors.Is(err, recognizer.ErrEmptyUtterance) {
			t.Fatalf("expected ErrEmptyUtterance, got: %v", err)
		}
	})
}
