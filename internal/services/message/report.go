package message

import (
	"strconv"
	"strings"

	"quickchat/internal/domain"
)

// FullReport renders the totals followed by the sent, disregarded and stored
// lists.
func (s *Service) FullReport() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var b strings.Builder
	b.WriteString("==== Message Report ====\n")
	b.WriteString("Total Messages Sent: " + strconv.Itoa(s.totalSent) + "\n\n")
	writeSection(&b, "Sent Messages", s.sent)
	writeSection(&b, "Disregarded Messages", s.disregarded)
	writeSection(&b, "Stored Messages", s.stored)
	return b.String()
}

func writeSection(b *strings.Builder, title string, msgs []*domain.Message) {
	b.WriteString("--- " + title + " ---\n")
	for _, m := range msgs {
		b.WriteString(m.String())
		b.WriteString("\n\n")
	}
}
