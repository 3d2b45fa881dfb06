package bot

import "errors"

// ErrNotConfigured indicates the handler could not be constructed because
// its recognizer binding does not resolve. Fatal at startup; a handler in
// this state never processes a turn.
var ErrNotConfigured = errors.New("bot is not configured")
