package domain

import (
	interfaces "quickchat/internal/domain/interfaces"
	types "quickchat/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	MessageID   = types.MessageID
	ContentHash = types.ContentHash
	Message     = types.Message
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	MessageRegistry      = interfaces.MessageRegistry
	MessageSnapshotStore = interfaces.MessageSnapshotStore
)

// MaxMessages is the size of the identifier pool.
const MaxMessages = types.MaxMessages

var (
	NewMessage   = types.NewMessage
	NewMessageID = types.NewMessageID
	HashContent  = types.HashContent
)
