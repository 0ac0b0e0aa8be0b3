package mediafx

import (
	"os"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"paisalocal/internal/api/controllers"
	"paisalocal/internal/infra"
	"paisalocal/internal/providers/storage"
	"paisalocal/internal/repositories"
	"paisalocal/internal/services"
	mem "paisalocal/pkg/memcache"
)

// The remote listing is considered fresh for this long.
const listingTTL = 30 * time.Second

var Module = fx.Provide(
	provideStorageClient,
	provideListingCache,
	provideAssetRepo,
	provideMediaService,
	provideMediaController)

func provideStorageClient() *storage.Client {
	return storage.NewClient(
		os.Getenv("STORAGE_URL"),
		getEnvWithDefault("STORAGE_BUCKET", "paisalocal-media"),
		os.Getenv("STORAGE_TOKEN"),
	)
}

func provideListingCache() *mem.ListingCache[storage.Object] {
	return mem.NewListingCache[storage.Object](listingTTL, time.Now)
}

func provideAssetRepo(db *gorm.DB) repositories.AssetRepository {
	return repositories.NewAssetRepository(db)
}

func provideMediaService(
	assets repositories.AssetRepository,
	store *storage.Client,
	listing *mem.ListingCache[storage.Object],
	metrics *infra.Metrics,
	logger *zap.Logger,
) services.MediaServiceInterface {
	return services.NewMediaService(assets, store, listing, metrics, logger)
}

func provideMediaController(mediaService services.MediaServiceInterface) *controllers.MediaController {
	return controllers.NewMediaController(mediaService)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
