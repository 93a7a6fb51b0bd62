package search

import (
	"context"

	"Karyatra/be/internal/resource"
)

// Provider searches one external source for learning resources. A provider
// carries its own credentials and request timeout. Implementations return
// an error instead of panicking; the recommendation engine treats a failed
// call the same as an empty one.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string, limit int) ([]resource.Resource, error)
}
