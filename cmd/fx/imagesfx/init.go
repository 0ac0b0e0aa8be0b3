package imagesfx

import (
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"paisalocal/internal/providers/images"
)

var Module = fx.Provide(ProvideImageProviders)

// ProvideImageProviders returns the image search clients in priority order:
// Pexels first, Unsplash as fallback. Providers without keys stay in the
// list but report unavailable and are skipped by the waterfall.
func ProvideImageProviders(logger *zap.Logger) []images.Provider {
	pexelsKey := os.Getenv("PEXELS_API_KEY")
	if pexelsKey == "" {
		logger.Warn("PEXELS_API_KEY not set, primary image provider disabled")
	}
	unsplashKey := os.Getenv("UNSPLASH_ACCESS_KEY")
	if unsplashKey == "" {
		logger.Warn("UNSPLASH_ACCESS_KEY not set, fallback image provider disabled")
	}

	return []images.Provider{
		images.NewPexelsClient(pexelsKey),
		images.NewUnsplashClient(unsplashKey),
	}
}
