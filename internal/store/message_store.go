package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"quickchat/internal/domain"
)

const (
	messagesFilename       = "storedMessages.json"
	sealedMessagesFilename = "storedMessages.json.enc"
)

// messageRecord is the persisted shape of one stored message.
type messageRecord struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Content   string `json:"content"`
	MessageID string `json:"messageID"`
}

// MessageFileStore persists the registry's stored-message set as a JSON array.
// When built with a passphrase the array is sealed before it reaches disk.
type MessageFileStore struct {
	path   string
	sealer *snapshotSealer
	mu     sync.Mutex
}

// NewMessageFileStore returns a plain JSON store rooted at dir.
func NewMessageFileStore(dir string) *MessageFileStore {
	return &MessageFileStore{path: filepath.Join(dir, messagesFilename)}
}

// NewSealedMessageFileStore returns a store rooted at dir whose file is
// encrypted under a key derived from passphrase.
func NewSealedMessageFileStore(dir, passphrase string) *MessageFileStore {
	return &MessageFileStore{
		path:   filepath.Join(dir, sealedMessagesFilename),
		sealer: newSnapshotSealer(passphrase),
	}
}

// Path returns the file the store reads and writes.
func (s *MessageFileStore) Path() string { return s.path }

// Sealed reports whether the snapshot is encrypted at rest.
func (s *MessageFileStore) Sealed() bool { return s.sealer != nil }

// SaveMessages overwrites the snapshot with msgs.
func (s *MessageFileStore) SaveMessages(msgs []*domain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]messageRecord, 0, len(msgs))
	for _, m := range msgs {
		records = append(records, messageRecord{
			Sender:    m.Sender(),
			Recipient: m.Recipient(),
			Content:   m.Content(),
			MessageID: m.ID().String(),
		})
	}
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	if s.Sealed() {
		if b, err = s.sealer.seal(b); err != nil {
			return err
		}
	}
	return writeFile(s.path, b, 0o600)
}

// LoadMessages reads the snapshot. A missing file or a JSON null is reported
// as not found. A message stored more than once appears once per entry, all
// sharing one *domain.Message. An out-of-range id, or two entries that share
// an id but differ in content, make the whole snapshot invalid.
func (s *MessageFileStore) LoadMessages() ([]*domain.Message, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.path)
	if err != nil {
		return nil, false, err
	}
	if b == nil {
		return nil, false, nil
	}
	if s.Sealed() {
		if b, err = s.sealer.open(b); err != nil {
			return nil, false, err
		}
	}

	var records []messageRecord
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", s.path, err)
	}
	if records == nil {
		return nil, false, nil
	}

	byID := make(map[domain.MessageID]*domain.Message, len(records))
	out := make([]*domain.Message, 0, len(records))
	for i, r := range records {
		id := domain.MessageID(r.MessageID)
		if _, err := id.Slot(); err != nil {
			return nil, false, fmt.Errorf("record %d: %w", i, err)
		}
		if prev, ok := byID[id]; ok {
			if prev.Sender() != r.Sender || prev.Recipient() != r.Recipient || prev.Content() != r.Content {
				return nil, false, fmt.Errorf("record %d: message id %q reused for a different message", i, r.MessageID)
			}
			out = append(out, prev)
			continue
		}
		m := domain.NewMessage(id, r.Sender, r.Recipient, r.Content)
		byID[id] = m
		out = append(out, m)
	}
	return out, true, nil
}

// Compile-time assertion that MessageFileStore implements domain.MessageSnapshotStore.
var _ domain.MessageSnapshotStore = (*MessageFileStore)(nil)
