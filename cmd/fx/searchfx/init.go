package searchfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"paisalocal/internal/api/controllers"
	"paisalocal/internal/infra"
	"paisalocal/internal/providers/images"
	"paisalocal/internal/services"
	"paisalocal/pkg/utils"
)

var Module = fx.Provide(
	provideResolverService,
	provideSuggestService,
	provideSearchService,
	provideSearchController)

func provideResolverService(logger *zap.Logger) services.ResolverServiceInterface {
	return services.NewResolverService(logger)
}

func provideSuggestService() services.SuggestServiceInterface {
	return services.NewSuggestService()
}

func provideSearchService(
	resolver services.ResolverServiceInterface,
	generator utils.DestinationGeneratorInterface,
	media services.MediaServiceInterface,
	providers []images.Provider,
	metrics *infra.Metrics,
	logger *zap.Logger,
) services.SearchServiceInterface {
	return services.NewSearchService(resolver, generator, media, providers, metrics, logger)
}

func provideSearchController(
	searchService services.SearchServiceInterface,
	suggestService services.SuggestServiceInterface,
) *controllers.SearchController {
	return controllers.NewSearchController(searchService, suggestService)
}
