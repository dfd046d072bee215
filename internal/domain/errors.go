package domain

import "errors"

var (
	// ErrCapacityExhausted is returned by Create when every pool slot is taken
	// and there is no stored message left to evict.
	ErrCapacityExhausted = errors.New("max 10 messages allowed; disregard or delete one to proceed")

	// ErrPersist wraps a failed save. The in-memory change it accompanies has
	// already been applied.
	ErrPersist = errors.New("persisting stored messages")

	// ErrContentTooLong is returned by caller-side validation for bodies over 250 characters.
	ErrContentTooLong = errors.New("message content exceeds 250 characters")

	// ErrInvalidRecipient is returned by caller-side validation for malformed cell numbers.
	ErrInvalidRecipient = errors.New("recipient cell number must match +27 followed by 9 digits")
)
