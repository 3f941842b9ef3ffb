package dto

// Request DTOs

// ActionRequest is the body the dialogue engine posts to the action webhook.
type ActionRequest struct {
	NextAction string         `json:"next_action"`
	SenderID   string         `json:"sender_id"`
	Tracker    Tracker        `json:"tracker"`
	Domain     map[string]any `json:"domain,omitempty"`
}

// Tracker is the conversation state as seen by the dialogue engine.
type Tracker struct {
	SenderID      string         `json:"sender_id"`
	Slots         map[string]any `json:"slots"`
	LatestMessage LatestMessage  `json:"latest_message"`
}

type LatestMessage struct {
	Text     string         `json:"text"`
	Intent   Intent         `json:"intent"`
	Entities []Entity       `json:"entities"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type Intent struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

type Entity struct {
	Entity string `json:"entity"`
	Value  any    `json:"value"`
}

// Response DTOs

// ActionResponse carries the tracker events and the bot messages of one action run.
type ActionResponse struct {
	Events    []Event      `json:"events"`
	Responses []BotMessage `json:"responses"`
}

// Event is a tracker event. Value is serialized even when nil, so a slot can be cleared.
type Event struct {
	Event string `json:"event"`
	Name  string `json:"name,omitempty"`
	Value any    `json:"value"`
}

type BotMessage struct {
	Text  string `json:"text,omitempty"`
	Image string `json:"image,omitempty"`
}

// UnknownActionResponse is returned with 404 for actions nobody registered.
type UnknownActionResponse struct {
	Error      string `json:"error"`
	ActionName string `json:"action_name"`
}
