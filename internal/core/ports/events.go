package ports

import (
	"context"
	"iter"

	"go.trai.ch/slink/internal/core/domain"
)

// EventSource emits host lifecycle events for cache invalidation.
//
//go:generate mockgen -source=events.go -destination=mocks/mock_events.go -package=mocks
type EventSource interface {
	// Start begins observing the host rooted at the given directory.
	Start(ctx context.Context, root string) error

	// Stop stops the source and releases all resources.
	Stop() error

	// Events returns an iterator of lifecycle events. The iterator ends
	// when the source is stopped or its context is cancelled.
	Events() iter.Seq[domain.LifecycleEvent]
}
