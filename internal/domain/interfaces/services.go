package interfaces

import domaintypes "quickchat/internal/domain/types"

// MessageRegistry is the bounded message working set.
type MessageRegistry interface {
	// Create allocates a pool slot for a new message, evicting the oldest
	// stored message when the pool is empty.
	Create(sender, recipient, content string) (*domaintypes.Message, error)

	Send(msg *domaintypes.Message) error
	StoreOnly(msg *domaintypes.Message) error
	Disregard(msg *domaintypes.Message) error
	DeleteByHash(hash domaintypes.ContentHash) (bool, error)

	GetByID(id domaintypes.MessageID) (*domaintypes.Message, bool)
	SearchByRecipient(recipient string) []*domaintypes.Message
	LongestMessage() (*domaintypes.Message, bool)
	SenderRecipientPairs() []string
	FullReport() string

	Sent() []*domaintypes.Message
	Disregarded() []*domaintypes.Message
	Stored() []*domaintypes.Message
	TotalSent() int
	AvailableIDs() []domaintypes.MessageID

	Load() error
	Save() error
}
