package types

import "fmt"

// Message is a short text note between two parties occupying one pool slot.
//
// Fields are fixed at construction. Membership in the registry's lists is
// tracked by pointer identity, so two messages with equal fields are still
// distinct entries.
type Message struct {
	id        MessageID
	sender    string
	recipient string
	content   string
}

// NewMessage builds a message bound to id. Only the registry allocates ids;
// the persistence layer uses this to restore saved messages.
func NewMessage(id MessageID, sender, recipient, content string) *Message {
	return &Message{id: id, sender: sender, recipient: recipient, content: content}
}

// ID returns the pool identifier.
func (m *Message) ID() MessageID { return m.id }

// Sender returns who wrote the message.
func (m *Message) Sender() string { return m.sender }

// Recipient returns who the message is addressed to.
func (m *Message) Recipient() string { return m.recipient }

// Content returns the message body.
func (m *Message) Content() string { return m.content }

// ContentHash recomputes the hash of the body.
func (m *Message) ContentHash() ContentHash { return HashContent(m.content) }

// String renders the message as it appears in reports.
func (m *Message) String() string {
	return fmt.Sprintf("Message ID: %s\nFrom: %s\nTo: %s\nMessage: %s\nHash: %s",
		m.id, m.sender, m.recipient, m.content, m.ContentHash())
}
