// Package message implements the bounded message registry.
//
// Ten ids form a FIFO pool. Create takes the head of the pool and, when the
// pool is empty, disregards the oldest stored message to make room. Send,
// StoreOnly, Disregard and DeleteByHash move messages between the sent,
// stored and disregarded lists and persist the stored list through a
// domain.MessageSnapshotStore after each change.
package message
