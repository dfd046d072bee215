package types

import (
	"fmt"
	"strconv"
	"unicode/utf16"
)

// MessageID is the string form of a pool slot in [1, MaxMessages].
type MessageID string

// MaxMessages is the number of identifiers in the pool.
const MaxMessages = 10

// NewMessageID returns the identifier for pool slot n.
func NewMessageID(n int) MessageID { return MessageID(strconv.Itoa(n)) }

// String returns the string form of the identifier.
func (id MessageID) String() string { return string(id) }

// Slot parses the identifier back into its pool slot.
func (id MessageID) Slot() (int, error) {
	n, err := strconv.Atoi(string(id))
	if err != nil {
		return 0, fmt.Errorf("message id %q: %w", string(id), err)
	}
	if n < 1 || n > MaxMessages {
		return 0, fmt.Errorf("message id %q out of range [1,%d]", string(id), MaxMessages)
	}
	return n, nil
}

// ContentHash is the decimal form of the 32-bit polynomial hash of a message body.
type ContentHash string

// String returns the string form of the hash.
func (h ContentHash) String() string { return string(h) }

// HashContent computes h = 31*h + c over the UTF-16 code units of content,
// wrapping at 32 bits. Equal content always yields an equal hash; the value
// is never stored.
func HashContent(content string) ContentHash {
	var h int32
	for _, unit := range utf16.Encode([]rune(content)) {
		h = 31*h + int32(unit)
	}
	return ContentHash(strconv.FormatInt(int64(h), 10))
}
