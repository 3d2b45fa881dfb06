package bot

import (
	"fmt"

	"luis-intent-bot/internal/recognizer"
	pkgLog "luis-intent-bot/pkg/log"
)

// Handler processes one inbound activity per call. It holds a single
// resolved recognizer; the binding lookup happens once at construction,
// never per turn.
type Handler struct {
	l          pkgLog.Logger
	recognizer recognizer.Recognizer
}

// New creates a Handler with an already-resolved recognizer.
func New(l pkgLog.Logger, r recognizer.Recognizer) *Handler {
	return &Handler{l: l, recognizer: r}
}

// NewFromRegistry resolves the named binding from the registry and creates
// the Handler. A missing binding fails construction with ErrNotConfigured.
func NewFromRegistry(l pkgLog.Logger, reg *recognizer.Registry, binding string) (*Handler, error) {
	r, err := reg.Resolve(binding)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotConfigured, err)
	}
	return New(l, r), nil
}
