// Package convo defines the domain types for an expandable conversation
// viewer: messages, conversations, sample data and color themes.
package convo

// Message is a single chat-like message. It is an immutable value; empty
// fields are valid and render as empty text.
type Message struct {
	Author string
	Body   string
}

// Conversation is an ordered sequence of messages. Order is rendering order.
type Conversation []Message
