package recognizer

import (
	"fmt"

	"luis-intent-bot/config"
	"luis-intent-bot/pkg/luis"
)

// Registry holds the recognizers declared in configuration, keyed by binding
// name. It is built once at startup; the bot resolves its binding from it at
// construction time, never per turn.
type Registry struct {
	bindings map[string]Recognizer
}

// InitializeRecognizers builds the registry from config.
// Disabled bindings are skipped; bindings missing required fields fail the
// whole initialization since a half-configured recognizer can only fail later.
func InitializeRecognizers(cfg *config.LUISConfig) (*Registry, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LUIS config is nil")
	}

	bindings := make(map[string]Recognizer)
	for _, app := range cfg.Apps {
		if !app.Enabled {
			continue
		}
		if app.Name == "" {
			return nil, fmt.Errorf("recognizer binding: name is required")
		}
		if app.AppID == "" || app.SubscriptionKey == "" || app.Endpoint == "" {
			return nil, fmt.Errorf("recognizer binding %s: app_id, subscription_key and endpoint are required", app.Name)
		}
		if _, exists := bindings[app.Name]; exists {
			return nil, fmt.Errorf("recognizer binding %s: duplicate name", app.Name)
		}

		client := luis.NewClient(app.Endpoint, app.AppID, app.SubscriptionKey)
		bindings[app.Name] = NewLUIS(app.Name, client)
	}

	if len(bindings) == 0 {
		return nil, ErrNoBindingsConfigured
	}

	return &Registry{bindings: bindings}, nil
}

// NewRegistry builds a registry from pre-constructed recognizers. Used by
// tests and by callers that construct their recognizer directly.
func NewRegistry(recognizers ...Recognizer) *Registry {
	bindings := make(map[string]Recognizer, len(recognizers))
	for _, r := range recognizers {
		bindings[r.Name()] = r
	}
	return &Registry{bindings: bindings}
}

// Resolve returns the recognizer registered under name.
func (reg *Registry) Resolve(name string) (Recognizer, error) {
	r, ok := reg.bindings[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBindingNotFound, name)
	}
	return r, nil
}
