package llm

import (
	"encoding/json"
	"fmt"
)

// Role represents the role of a message sender in a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}

// UnmarshalJSON rejects roles outside the closed set.
func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("role must be a string: %w", err)
	}
	if !Role(s).Valid() {
		return fmt.Errorf("unknown role %q", s)
	}
	*r = Role(s)
	return nil
}

// Message represents a single message in a conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest contains the parameters for a streamed completion.
type CompletionRequest struct {
	Model    string
	Messages []Message
	// System, when set, is sent ahead of Messages.
	System string
}

// WithSystem returns msgs with a system message prepended.
func WithSystem(system string, msgs []Message) []Message {
	if system == "" {
		return msgs
	}
	out := make([]Message, 0, len(msgs)+1)
	out = append(out, Message{Role: RoleSystem, Content: system})
	return append(out, msgs...)
}
