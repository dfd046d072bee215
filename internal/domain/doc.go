// Package domain defines the message model, the registry and persistence
// contracts, and the sentinel errors shared across quickchat.
// It contains plain types and interfaces only.
package domain
