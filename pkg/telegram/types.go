package telegram

// Update represents a Telegram incoming update. At most one of the update
// kind fields is set per update.
type Update struct {
	UpdateID      int64             `json:"update_id"`
	Message       *Message          `json:"message,omitempty"`
	EditedMessage *Message          `json:"edited_message,omitempty"`
	MyChatMember  *ChatMemberUpdate `json:"my_chat_member,omitempty"`
}

// Message represents a Telegram message.
type Message struct {
	MessageID int64  `json:"message_id"`
	From      *User  `json:"from,omitempty"`
	Chat      *Chat  `json:"chat"`
	Date      int64  `json:"date"`
	Text      string `json:"text,omitempty"`
}

// User represents a Telegram user.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
}

// Chat represents a Telegram chat.
type Chat struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// ChatMemberUpdate represents a change of the bot's membership in a chat.
type ChatMemberUpdate struct {
	Chat *Chat `json:"chat"`
	From *User `json:"from,omitempty"`
	Date int64 `json:"date"`
}

// SetWebhookRequest is the payload for Telegram setWebhook API.
type SetWebhookRequest struct {
	URL         string `json:"url"`
	SecretToken string `json:"secret_token,omitempty"`
}

// SendMessageRequest is the payload for Telegram sendMessage API.
type SendMessageRequest struct {
	ChatID    int64  `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// APIResponse is a generic Telegram Bot API response wrapper.
type APIResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
}
