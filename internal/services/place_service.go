package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"paisalocal/internal/gazetteer"
	"paisalocal/internal/models/db_models"
	"paisalocal/internal/models/response_models"
	"paisalocal/internal/repositories"
	"paisalocal/pkg/utils"
)

type PlaceServiceInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (response_models.Destination, error)
	Filter(ctx context.Context, query string, page, pageSize int) ([]response_models.Destination, error)
	// SeedFromGazetteer upserts the curated entries into the catalog.
	SeedFromGazetteer(ctx context.Context) (int, error)
}

type PlaceService struct {
	placeRepo repositories.PlaceRepository
	logger    *zap.Logger
}

func NewPlaceService(placeRepo repositories.PlaceRepository, logger *zap.Logger) PlaceServiceInterface {
	return &PlaceService{placeRepo: placeRepo, logger: logger}
}

func (p *PlaceService) GetByID(ctx context.Context, id uuid.UUID) (response_models.Destination, error) {
	place, err := p.placeRepo.GetByID(ctx, id)
	if err != nil {
		p.logger.Error("fetching place failed", zap.Error(err))
		return response_models.Destination{}, utils.ErrDatabaseError
	}
	if place == nil {
		return response_models.Destination{}, utils.ErrPlaceNotFound
	}
	return destinationFromPlace(place), nil
}

func (p *PlaceService) Filter(ctx context.Context, query string, page, pageSize int) ([]response_models.Destination, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	places, err := p.placeRepo.Filter(ctx, query, page, pageSize)
	if err != nil {
		p.logger.Error("filtering places failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Destination, 0, len(places))
	for i := range places {
		out = append(out, destinationFromPlace(&places[i]))
	}
	return out, nil
}

func (p *PlaceService) SeedFromGazetteer(ctx context.Context) (int, error) {
	entries := gazetteer.Entries()
	places := make([]db_models.Place, 0, len(entries))
	for _, e := range entries {
		logistics := gazetteer.LogisticsFor(e.Region)
		places = append(places, db_models.Place{
			Title:              e.Title,
			Region:             string(e.Region),
			Description:        e.Description,
			ImageURL:           e.ImageURL,
			BusTicketCOP:       e.BusTicketCOP,
			AvgMealCOP:         e.AvgMealCOP,
			AccessibilityScore: e.Accessibility,
			Wheelchair:         e.Wheelchair,
			SecurityStatus:     response_models.SecuritySafe,
			RoadState:          defaultRoadState,
			TravelTime:         e.TravelTime,
			Terminal:           fmt.Sprintf("Terminal del %s", logistics.Terminal),
			MarketDay:          logistics.MarketDay,
			Carriers:           logistics.Carriers,
			TipFood:            e.TipFood,
			TipCulture:         e.TipCulture,
		})
	}

	if err := p.placeRepo.UpsertAll(ctx, places); err != nil {
		p.logger.Error("seeding places failed", zap.Error(err))
		return 0, utils.ErrDatabaseError
	}
	return len(places), nil
}

func destinationFromPlace(place *db_models.Place) response_models.Destination {
	var tips *response_models.Tips
	if place.TipFood != "" || place.TipCulture != "" || place.TipLogistics != "" || place.TipPeople != "" {
		tips = &response_models.Tips{
			Food:      place.TipFood,
			Culture:   place.TipCulture,
			Logistics: place.TipLogistics,
			People:    place.TipPeople,
		}
	}
	return response_models.Destination{
		Title:       place.Title,
		Region:      place.Region,
		Description: place.Description,
		ImageURL:    place.ImageURL,
		Budget: response_models.Budget{
			BusTicketCOP: place.BusTicketCOP,
			AvgMealCOP:   place.AvgMealCOP,
		},
		Accessibility: response_models.Accessibility{
			Score:      place.AccessibilityScore,
			Wheelchair: place.Wheelchair,
		},
		SecurityStatus: place.SecurityStatus,
		RoadState:      place.RoadState,
		TravelTime:     place.TravelTime,
		Terminal:       place.Terminal,
		MarketDay:      place.MarketDay,
		Carriers:       place.Carriers,
		Tips:           tips,
	}
}
