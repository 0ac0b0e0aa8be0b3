// Package images holds the external image search clients. Providers are
// tried in priority order; a provider without a key reports Available false
// and is skipped rather than erroring.
package images

import "context"

type Provider interface {
	Name() string
	Available() bool
	// Search returns the single best-match image URL for the query, or
	// ("", nil) when the provider has no result.
	Search(ctx context.Context, query string) (string, error)
}
