package reviewsfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"paisalocal/internal/api/controllers"
	"paisalocal/internal/repositories"
	"paisalocal/internal/services"
)

var Module = fx.Provide(
	provideReviewRepo,
	provideReviewService,
	provideReviewsController)

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepository {
	return repositories.NewReviewRepository(db)
}

func provideReviewService(
	reviewRepo repositories.ReviewRepository,
	placeRepo repositories.PlaceRepository,
	logger *zap.Logger,
) services.ReviewServiceInterface {
	return services.NewReviewService(reviewRepo, placeRepo, logger)
}

func provideReviewsController(reviewService services.ReviewServiceInterface) *controllers.ReviewsController {
	return controllers.NewReviewsController(reviewService)
}
