package message

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"quickchat/internal/domain"
)

// Load replaces the working set with the persisted snapshot. Restored
// messages keep their ids, which stay occupied until disregarded or deleted.
// Entries sharing an id restore as the same message, the way Send and
// StoreOnly left them.
//
// A missing or unreadable snapshot is not an error: the registry keeps its
// current state and the problem is logged.
func (s *Service) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs, ok, err := s.snapshots.LoadMessages()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"function": "Load",
			"error":    err.Error(),
		}).Warn("Ignoring unreadable message snapshot")
		return nil
	}
	if !ok {
		s.log.WithField("function", "Load").Info("No stored messages found yet")
		return nil
	}

	s.resetLocked()
	s.stored = make([]*domain.Message, 0, len(msgs))
	for _, m := range msgs {
		if live, ok := s.byID[m.ID()]; ok {
			// A message stored more than once comes back as one live entry.
			s.stored = append(s.stored, live)
			continue
		}
		s.stored = append(s.stored, m)
		s.byID[m.ID()] = m
		s.ids = append(s.ids, m.ID())
		s.hashes = append(s.hashes, m.ContentHash())
		s.claimSlotLocked(m.ID())
	}

	s.log.WithFields(logrus.Fields{
		"function":   "Load",
		"restored":   len(msgs),
		"free_slots": len(s.available),
	}).Info("Stored messages restored")
	return nil
}

// Save writes the stored list to the snapshot store.
func (s *Service) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked()
}

// persistLocked replaces the snapshot with the stored list. On failure memory
// stays authoritative; the next successful save catches the file up.
func (s *Service) persistLocked() error {
	if err := s.snapshots.SaveMessages(slices.Clone(s.stored)); err != nil {
		s.log.WithFields(logrus.Fields{
			"function": "persist",
			"stored":   len(s.stored),
			"error":    err.Error(),
		}).Error("Failed to persist stored messages")
		return fmt.Errorf("%w: %w", domain.ErrPersist, err)
	}
	return nil
}

// removeFirst drops the first occurrence of v, leaving xs untouched.
func removeFirst[T comparable](xs []T, v T) []T {
	i := lo.IndexOf(xs, v)
	if i < 0 {
		return xs
	}
	out := make([]T, 0, len(xs)-1)
	out = append(out, xs[:i]...)
	return append(out, xs[i+1:]...)
}
