package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"paisalocal/cmd/fx/accountfx"
	"paisalocal/cmd/fx/aifx"
	"paisalocal/cmd/fx/dbfx"
	"paisalocal/cmd/fx/imagesfx"
	"paisalocal/cmd/fx/mediafx"
	"paisalocal/cmd/fx/placesfx"
	"paisalocal/cmd/fx/reviewsfx"
	"paisalocal/cmd/fx/searchfx"
	"paisalocal/internal/api/controllers"
	"paisalocal/internal/infra"
	"paisalocal/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		fx.Provide(ProvideLogger),
		fx.Provide(infra.NewMetrics),
		dbfx.Module,
		aifx.Module,
		imagesfx.Module,
		mediafx.Module,
		placesfx.Module,
		searchfx.Module,
		accountfx.Module,
		reviewsfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	return logger
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			go func() {
				logger.Info("Starting HTTP server", zap.String("port", port))
				if err := engine.Run(":" + port); err != nil {
					logger.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	metrics *infra.Metrics,
	searchController *controllers.SearchController,
	placesController *controllers.PlacesController,
	mediaController *controllers.MediaController,
	accountController *controllers.AccountController,
	reviewsController *controllers.ReviewsController,
) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, metrics,
		searchController, placesController, mediaController,
		accountController, reviewsController)

	return r
}

func RegisterRoutes(
	r *gin.Engine,
	metrics *infra.Metrics,
	searchController *controllers.SearchController,
	placesController *controllers.PlacesController,
	mediaController *controllers.MediaController,
	accountController *controllers.AccountController,
	reviewsController *controllers.ReviewsController,
) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	r.GET("/search", searchController.Search)
	r.GET("/search/latest", searchController.Latest)
	r.GET("/suggest", searchController.Suggest)

	placesGroup := r.Group("/places")
	placesGroup.GET("", placesController.List)
	placesGroup.GET("/:id", placesController.GetByID)
	placesGroup.POST("/seed", placesController.Seed)

	mediaGroup := r.Group("/media")
	mediaGroup.POST("", mediaController.Upload)
	mediaGroup.GET("", mediaController.List)
	mediaGroup.GET("/file/*path", mediaController.ServeFile)
	mediaGroup.PUT("/token", mediaController.SetToken)
	mediaGroup.DELETE("/*path", mediaController.Delete)

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)

	r.GET("/reviews", reviewsController.ListByPlace)
	r.POST("/reviews", middleware.JWTAuthMiddleware(), reviewsController.Create)
}
