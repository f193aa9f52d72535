package search

import (
	"context"

	"autologic-fitment-api/internal/model"
)

// Provider is the opaque catalog text-search backend. Implementations issue
// one query and return raw product tuples; ordering is provider-defined.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string) ([]model.SearchResult, error)
}
