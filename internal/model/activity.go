package model

import "time"

// ActivityType classifies an inbound activity.
type ActivityType string

const (
	ActivityTypeMessage            ActivityType = "message"
	ActivityTypeMessageUpdate      ActivityType = "messageUpdate"
	ActivityTypeConversationUpdate ActivityType = "conversationUpdate"
	ActivityTypeEvent              ActivityType = "event"
)

// Activity is one inbound event in a conversational turn. It is owned by the
// transport layer and only read by the turn handler; "message" is the only
// type carrying recognizer-relevant content.
type Activity struct {
	ID        string       // Transport-assigned activity ID
	Type      ActivityType // Activity classification, see constants above
	Text      string       // Utterance text; set for message activities only
	ChannelID string       // Source channel (e.g. "telegram")
	FromID    string       // Sender identity within the channel
	Timestamp time.Time    // When the transport received the activity
}
