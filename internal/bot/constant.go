package bot

// Log prefixes
const (
	LogPrefixHandleTurn = "internal.bot.HandleTurn"
	LogPrefixEntities   = "internal.bot.ExtractEntitySummary"
)

// IntentNone is the LUIS sentinel intent meaning "nothing matched".
const IntentNone = "None"

// Reply formats. The exact strings are user-facing contract; tests pin them.
const (
	ReplyTopIntentFormat = "==>LUIS Top Scoring Intent: %s, Score: %v\n"
	ReplyNoIntents       = "No LUIS intents were found"
	ReplyEventFormat     = "%s event detected"
	ReplyEntityFormat    = "Entity: %s, Score: %v."
	ReplyNoEntities      = "No entities found in LUIS response"
)
