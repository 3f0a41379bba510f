package ports

import (
	"context"

	"go.trai.ch/slink/internal/core/domain"
)

// OverrideStore persists the manual settings-URL overrides. Stored URLs are
// sanitized before they reach Save; Load never returns invalid entries.
//
//go:generate mockgen -source=overrides.go -destination=mocks/mock_overrides.go -package=mocks
type OverrideStore interface {
	// Load returns the stored override mapping. A store that has never been
	// written returns an empty mapping, not an error.
	Load(ctx context.Context) (domain.Overrides, error)

	// Save replaces the stored override mapping.
	Save(ctx context.Context, overrides domain.Overrides) error
}
