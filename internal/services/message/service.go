package message

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"quickchat/internal/domain"
)

// Service is the bounded message registry.
//
// State:
//   - available: free pool slots, FIFO. Release order decides the next id.
//   - sent, disregarded, stored: membership lists over shared *Message values.
//   - ids, hashes: bookkeeping lists mirroring the live ids and stored hashes.
//   - byID: live id to the message that owns the slot.
//
// A single RWMutex guards all of it. Every mutation that reaches disk holds
// the write lock for the duration of the save.
type Service struct {
	snapshots domain.MessageSnapshotStore
	log       logrus.FieldLogger

	mu          sync.RWMutex
	available   []int
	sent        []*domain.Message
	disregarded []*domain.Message
	stored      []*domain.Message
	ids         []domain.MessageID
	hashes      []domain.ContentHash
	byID        map[domain.MessageID]*domain.Message
	totalSent   int
}

// New returns an empty registry with a full pool. Call Load to restore the
// persisted working set.
func New(snapshots domain.MessageSnapshotStore, log logrus.FieldLogger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &Service{snapshots: snapshots, log: log}
	s.resetLocked()
	return s
}

// resetLocked restores the default state. totalSent and the sent and
// disregarded histories are left alone; they are never persisted.
func (s *Service) resetLocked() {
	s.available = make([]int, 0, domain.MaxMessages)
	for i := 1; i <= domain.MaxMessages; i++ {
		s.available = append(s.available, i)
	}
	s.stored = nil
	s.ids = nil
	s.hashes = nil
	s.byID = make(map[domain.MessageID]*domain.Message, domain.MaxMessages)
}

// Create allocates the head of the pool to a new message. When the pool is
// empty the oldest stored message is disregarded first; if nothing is stored
// the call fails with domain.ErrCapacityExhausted. Create does not persist.
func (s *Service) Create(sender, recipient, content string) (*domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.available) == 0 {
		if len(s.stored) > 0 {
			oldest := s.stored[0]
			s.log.WithFields(logrus.Fields{
				"function":   "Create",
				"message_id": oldest.ID(),
			}).Info("Pool exhausted, disregarding oldest stored message")
			// A failed save is already logged; the eviction itself stands.
			_ = s.disregardLocked(oldest)
		}
		if len(s.available) == 0 {
			s.log.WithField("function", "Create").Warn("Pool exhausted with nothing stored to evict")
			return nil, domain.ErrCapacityExhausted
		}
	}

	slot := s.available[0]
	s.available = s.available[1:]

	msg := domain.NewMessage(domain.NewMessageID(slot), sender, recipient, content)
	s.byID[msg.ID()] = msg
	s.ids = append(s.ids, msg.ID())
	s.hashes = append(s.hashes, msg.ContentHash())

	s.log.WithFields(logrus.Fields{
		"function":   "Create",
		"message_id": msg.ID(),
		"hash":       msg.ContentHash(),
		"free_slots": len(s.available),
	}).Debug("Message created")
	return msg, nil
}

// Send records msg as sent and stored, then persists. Sending the same
// message twice lists it twice.
func (s *Service) Send(msg *domain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sent = append(s.sent, msg)
	s.stored = append(s.stored, msg)
	s.totalSent++

	s.log.WithFields(logrus.Fields{
		"function":   "Send",
		"message_id": msg.ID(),
		"total_sent": s.totalSent,
	}).Info("Message sent")
	return s.persistLocked()
}

// StoreOnly keeps msg in the working set without sending it. The id and hash
// bookkeeping lists gain an entry only when they lack one.
func (s *Service) StoreOnly(msg *domain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := msg.ID()
	if owner, ok := s.byID[id]; ok && owner != msg {
		s.log.WithFields(logrus.Fields{
			"function":   "StoreOnly",
			"message_id": id,
		}).Warn("Slot already owned by another message, re-registering")
	}
	s.stored = append(s.stored, msg)
	s.byID[id] = msg
	s.claimSlotLocked(id)
	if !lo.Contains(s.ids, id) {
		s.ids = append(s.ids, id)
	}
	if hash := msg.ContentHash(); !lo.Contains(s.hashes, hash) {
		s.hashes = append(s.hashes, hash)
	}

	s.log.WithFields(logrus.Fields{
		"function":   "StoreOnly",
		"message_id": id,
	}).Info("Message stored")
	return s.persistLocked()
}

// Disregard drops msg from the working set, releases its slot and keeps it in
// the disregarded history.
func (s *Service) Disregard(msg *domain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disregardLocked(msg)
}

func (s *Service) disregardLocked(msg *domain.Message) error {
	s.removeLocked(msg)
	s.disregarded = append(s.disregarded, msg)

	s.log.WithFields(logrus.Fields{
		"function":   "Disregard",
		"message_id": msg.ID(),
		"free_slots": len(s.available),
	}).Info("Message disregarded")
	return s.persistLocked()
}

// DeleteByHash removes the first sent message whose content hashes to hash.
// Unlike Disregard nothing is kept in history. Messages that were stored but
// never sent are not searched.
func (s *Service) DeleteByHash(hash domain.ContentHash) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg, ok := lo.Find(s.sent, func(m *domain.Message) bool {
		return m.ContentHash() == hash
	})
	if !ok {
		s.log.WithFields(logrus.Fields{
			"function": "DeleteByHash",
			"hash":     hash,
		}).Debug("No sent message matches hash")
		return false, nil
	}
	s.removeLocked(msg)

	s.log.WithFields(logrus.Fields{
		"function":   "DeleteByHash",
		"message_id": msg.ID(),
		"hash":       hash,
	}).Info("Message deleted")
	return true, s.persistLocked()
}

// removeLocked takes msg out of every list and index. The slot goes back to
// the pool only if msg still owns it, so a stale reference can never free an
// id that was handed to someone else.
func (s *Service) removeLocked(msg *domain.Message) {
	s.sent = lo.Without(s.sent, msg)
	s.stored = lo.Without(s.stored, msg)
	s.hashes = removeFirst(s.hashes, msg.ContentHash())
	s.ids = removeFirst(s.ids, msg.ID())

	id := msg.ID()
	if owner, ok := s.byID[id]; ok && owner == msg {
		delete(s.byID, id)
		if slot, err := id.Slot(); err == nil && !lo.Contains(s.available, slot) {
			s.available = append(s.available, slot)
		}
	}
}

// claimSlotLocked takes id out of the pool if it is still free.
func (s *Service) claimSlotLocked(id domain.MessageID) {
	slot, err := id.Slot()
	if err != nil {
		return
	}
	s.available = removeFirst(s.available, slot)
}

// GetByID returns the live message occupying id.
func (s *Service) GetByID(id domain.MessageID) (*domain.Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msg, ok := s.byID[id]
	return msg, ok
}

// SearchByRecipient returns sent messages addressed to recipient, ignoring
// case, in the order they were sent.
func (s *Service) SearchByRecipient(recipient string) []*domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Filter(s.sent, func(m *domain.Message, _ int) bool {
		return strings.EqualFold(m.Recipient(), recipient)
	})
}

// LongestMessage returns the sent message with the most characters. The
// earliest one wins a tie.
func (s *Service) LongestMessage() (*domain.Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.sent) == 0 {
		return nil, false
	}
	return lo.MaxBy(s.sent, func(a, longest *domain.Message) bool {
		return utf8.RuneCountInString(a.Content()) > utf8.RuneCountInString(longest.Content())
	}), true
}

// SenderRecipientPairs lists each distinct "From: x -> To: y" pair among sent
// messages. Callers must not rely on the order.
func (s *Service) SenderRecipientPairs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Uniq(lo.Map(s.sent, func(m *domain.Message, _ int) string {
		return fmt.Sprintf("From: %s -> To: %s", m.Sender(), m.Recipient())
	}))
}

// Sent returns a copy of the sent list.
func (s *Service) Sent() []*domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.sent)
}

// Disregarded returns a copy of the disregarded history.
func (s *Service) Disregarded() []*domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.disregarded)
}

// Stored returns a copy of the stored list.
func (s *Service) Stored() []*domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.stored)
}

// MessageIDs returns a copy of the id bookkeeping list.
func (s *Service) MessageIDs() []domain.MessageID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.ids)
}

// MessageHashes returns a copy of the hash bookkeeping list.
func (s *Service) MessageHashes() []domain.ContentHash {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.hashes)
}

// TotalSent counts successful sends since construction.
func (s *Service) TotalSent() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalSent
}

// AvailableIDs returns the free slots in allocation order.
func (s *Service) AvailableIDs() []domain.MessageID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Map(s.available, func(slot int, _ int) domain.MessageID {
		return domain.NewMessageID(slot)
	})
}

// Compile-time assertion that Service implements domain.MessageRegistry.
var _ domain.MessageRegistry = (*Service)(nil)
