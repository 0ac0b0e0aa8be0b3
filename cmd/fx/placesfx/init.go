package placesfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"paisalocal/internal/api/controllers"
	"paisalocal/internal/repositories"
	"paisalocal/internal/services"
)

var Module = fx.Provide(
	providePlaceRepo,
	providePlaceService,
	providePlacesController)

func providePlaceRepo(db *gorm.DB) repositories.PlaceRepository {
	return repositories.NewPlaceRepository(db)
}

func providePlaceService(placeRepo repositories.PlaceRepository, logger *zap.Logger) services.PlaceServiceInterface {
	return services.NewPlaceService(placeRepo, logger)
}

func providePlacesController(placeService services.PlaceServiceInterface) *controllers.PlacesController {
	return controllers.NewPlacesController(placeService)
}
