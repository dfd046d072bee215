package interfaces

import domaintypes "quickchat/internal/domain/types"

// MessageSnapshotStore persists the registry's stored-message set.
type MessageSnapshotStore interface {
	// SaveMessages replaces whatever was persisted with msgs, in order.
	SaveMessages(msgs []*domaintypes.Message) error
	// LoadMessages returns the persisted set and whether anything was found.
	LoadMessages() ([]*domaintypes.Message, bool, error)
}
