package luis

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RecognitionResult is the LUIS prediction for one utterance.
type RecognitionResult struct {
	Query    string        `json:"query"`
	Intents  []IntentScore `json:"intents"`
	Entities EntityPayload `json:"entities"`
}

// IntentScore is one (intent, confidence) pair. The wire order of the
// intents array is preserved; callers rely on it for tie-breaking.
type IntentScore struct {
	Intent string  `json:"intent"`
	Score  float64 `json:"score"`
}

// EntityEntry is one key/value pair of the entities payload. The value is
// kept opaque; its schema is recognizer-defined and decoded by the consumer.
type EntityEntry struct {
	Key   string
	Value json.RawMessage
}

// EntityPayload is the entities object in its wire order. A Go map would
// lose the insertion order of the JSON object, so the payload is decoded
// token by token into an ordered slice.
type EntityPayload []EntityEntry

// UnmarshalJSON decodes a JSON object into ordered entries.
func (p *EntityPayload) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("luis: failed to read entities payload: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("luis: entities payload is not a JSON object")
	}

	var entries EntityPayload
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("luis: failed to read entity key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("luis: entity key is not a string")
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("luis: failed to read entity value for %q: %w", key, err)
		}
		entries = append(entries, EntityEntry{Key: key, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("luis: failed to read entities payload: %w", err)
	}

	*p = entries
	return nil
}

// MarshalJSON encodes the entries back into a JSON object in order.
func (p EntityPayload) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(e.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
