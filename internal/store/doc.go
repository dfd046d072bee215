// Package store provides file-based persistence for quickchat's message
// registry.
//
// MessageFileStore writes the stored-message set as a JSON array of
// {sender, recipient, content, messageID} records, replacing the whole file on
// every save via a temp file and rename. With a passphrase the array is sealed
// with scrypt and ChaCha20-Poly1305 before it is written. All methods are
// concurrency-safe via internal locking.
package store
