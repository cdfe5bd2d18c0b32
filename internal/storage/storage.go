// Package storage provides the key-value document store the booking data
// lives in. The store keeps two logical records, both JSON: the session
// user and the full booking collection. Writes replace whole records;
// there are no transactions, so concurrent writers follow last-writer-wins.
package storage

import (
	"context"
	"errors"
)

// Record keys.
const (
	KeyCurrentUser   = "currentUser"
	KeySpaceBookings = "spaceBookings"
)

// ErrNotFound is returned by Get when the key has no record.
var ErrNotFound = errors.New("record not found")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
