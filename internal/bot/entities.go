package bot

import (
	"context"
	"encoding/json"
	"fmt"

	"luis-intent-bot/pkg/luis"
)

// entitySchema tags which known schema an entity value matched.
type entitySchema int

const (
	schemaAppointment entitySchema = iota // marked by a "text" field, carries an Appointment list
	schemaMeeting                         // marked by a "noida" field, carries a Meeting list
)

func (s entitySchema) String() string {
	switch s {
	case schemaAppointment:
		return "appointment"
	case schemaMeeting:
		return "meeting"
	default:
		return "unknown"
	}
}

// entityMatch is one extracted entity: its schema, type and confidence.
type entityMatch struct {
	schema     entitySchema
	entityType string
	score      float64
}

// entityFields is the typed element of the Appointment and Meeting lists.
type entityFields struct {
	Type  string  `json:"type"`
	Score float64 `json:"score"`
}

// entityValue is the decoded superset of the known entity schemas. Marker
// fields are pointers so presence can be told apart from the zero value; the
// two schemas are not mutually exclusive within one value.
type entityValue struct {
	Text        *string        `json:"text"`
	Noida       *string        `json:"noida"`
	Appointment []entityFields `json:"Appointment"`
	Meeting     []entityFields `json:"Meeting"`
}

// parseEntityValue decodes one opaque entity value into the closed set of
// known schema matches, in schema order (appointment before meeting). A
// value matching neither schema yields no matches and no error; a value that
// is not the expected tree shape yields a parse error the caller decides on.
func parseEntityValue(raw json.RawMessage) ([]entityMatch, error) {
	var v entityValue
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("entity value does not parse as a known schema: %w", err)
	}

	var matches []entityMatch
	if v.Text != nil && len(v.Appointment) > 0 {
		first := v.Appointment[0]
		matches = append(matches, entityMatch{schema: schemaAppointment, entityType: first.Type, score: first.Score})
	}
	if v.Noida != nil && len(v.Meeting) > 0 {
		first := v.Meeting[0]
		matches = append(matches, entityMatch{schema: schemaMeeting, entityType: first.Type, score: first.Score})
	}
	return matches, nil
}

// ExtractEntitySummary scans the whole entity payload in its wire order and
// returns the summary of the LAST match found. The scan never stops early:
// a later entry overwrites an earlier match. Malformed entity values are
// logged and skipped; the rest of the scan is unaffected.
func (h *Handler) ExtractEntitySummary(ctx context.Context, result luis.RecognitionResult) string {
	summary := ""
	for _, entry := range result.Entities {
		matches, err := parseEntityValue(entry.Value)
		if err != nil {
			h.l.Warnf(ctx, "%s: skipping entity %q: %v", LogPrefixEntities, entry.Key, err)
			continue
		}
		for _, m := range matches {
			h.l.Debugf(ctx, "%s: %s schema matched in entity %q", LogPrefixEntities, m.schema, entry.Key)
			summary = fmt.Sprintf(ReplyEntityFormat, m.entityType, m.score)
		}
	}

	if summary == "" {
		return ReplyNoEntities
	}
	return summary
}
