// Package json decodes conversation fixtures from JSON files.
package json

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/convo"
)

// envelope is the v1 wire format for a conversation fixture.
type envelope struct {
	Version  int          `json:"version"`
	Messages []messageDTO `json:"messages"`
}

type messageDTO struct {
	Author string `json:"author"`
	Body   string `json:"body"`
}

// UnmarshalConversation deserializes a Conversation from JSON in v1
// envelope format. Message order is preserved.
func UnmarshalConversation(data []byte) (convo.Conversation, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return nil, fmt.Errorf("%w: %d", convo.ErrUnsupportedVersion, env.Version)
	}
	conv := make(convo.Conversation, len(env.Messages))
	for i, dto := range env.Messages {
		conv[i] = convo.Message{Author: dto.Author, Body: dto.Body}
	}
	return conv, nil
}

// Load reads a Conversation from a JSON file.
func Load(path string) (convo.Conversation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalConversation(data)
}
