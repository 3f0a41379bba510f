package ports

import (
	"context"
	"time"
)

// TransientStore is the host's expiring key-value cache. It is shared across
// concurrent requests; implementations tolerate racing set and delete calls
// because cached payloads are rebuilt idempotently.
//
//go:generate mockgen -source=transient.go -destination=mocks/mock_transient.go -package=mocks
type TransientStore interface {
	// Get returns the stored value for key, or nil with no error on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key for the given lifetime. A non-positive ttl
	// stores the value without expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
