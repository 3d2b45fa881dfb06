package bot

import "luis-intent-bot/pkg/luis"

// SelectTopIntent picks the highest-scoring intent from the result.
// Ties break to the first pair in the recognizer's own order, which keeps
// the selection deterministic for identical results. Returns false when no
// intents are present or the winner is the "None" sentinel.
func SelectTopIntent(result luis.RecognitionResult) (TopIntent, bool) {
	if len(result.Intents) == 0 {
		return TopIntent{}, false
	}

	top := result.Intents[0]
	for _, candidate := range result.Intents[1:] {
		if candidate.Score > top.Score {
			top = candidate
		}
	}

	if top.Intent == IntentNone {
		return TopIntent{}, false
	}
	return TopIntent{Intent: top.Intent, Score: top.Score}, true
}
