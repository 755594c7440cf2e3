package chat

import "time"

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single conversational turn. A message is never mutated
// after it is recorded; classification metadata is attached to user
// turns when they are created, coaching metadata to assistant turns.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`

	// User turns only.
	Mood   string   `json:"sentiment,omitempty"`
	Topics []string `json:"topics,omitempty"`

	// Assistant turns only.
	CopingStrategy string `json:"copingStrategy,omitempty"`
	Resources      bool   `json:"resources,omitempty"`
}
