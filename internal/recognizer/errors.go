package recognizer

import "errors"

var (
	// ErrBindingNotFound indicates no recognizer is registered under the requested name.
	ErrBindingNotFound = errors.New("recognizer binding not found")

	// ErrNoBindingsConfigured indicates the configuration declares no usable recognizers.
	ErrNoBindingsConfigured = errors.New("no recognizer bindings configured")

	// ErrEmptyUtterance indicates a message activity with no text to recognize.
	ErrEmptyUtterance = errors.New("empty utterance")
)
