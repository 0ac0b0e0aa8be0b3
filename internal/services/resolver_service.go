package services

import (
	"fmt"

	"go.uber.org/zap"

	"paisalocal/internal/gazetteer"
	"paisalocal/internal/models/response_models"
	"paisalocal/pkg/utils"
)

// Defaults used when the municipality fallback has no curated data.
const (
	defaultBusTicketCOP = 25000
	defaultAvgMealCOP   = 15000
	defaultRoadState    = "Vía en buen estado, consultar antes de viajar"
	placeholderImageURL = "https://images.paisalocal.co/placeholder/pueblo.jpg"
)

type ResolverServiceInterface interface {
	// ResolveLocal finds a best-effort local match for a free-text query.
	// Queries shorter than two normalized characters never match.
	ResolveLocal(query string) (*response_models.Destination, bool)
}

type ResolverService struct {
	logger *zap.Logger
}

func NewResolverService(logger *zap.Logger) ResolverServiceInterface {
	return &ResolverService{logger: logger}
}

func (r *ResolverService) ResolveLocal(query string) (*response_models.Destination, bool) {
	normalized := utils.Normalize(query)
	if len(normalized) < 2 {
		return nil, false
	}

	if entry, ok := gazetteer.FindEntry(query); ok {
		return r.fromGazetteer(entry), true
	}

	if name, ok := gazetteer.BestMunicipality(query); ok {
		r.logger.Debug("resolved via municipality fallback",
			zap.String("query", query), zap.String("municipality", name))
		return r.fromMunicipality(name), true
	}

	return nil, false
}

func (r *ResolverService) fromGazetteer(entry *gazetteer.Entry) *response_models.Destination {
	logistics := gazetteer.LogisticsFor(entry.Region)

	busTicket := entry.BusTicketCOP
	if busTicket == 0 {
		busTicket = logistics.AvgFareCOP
	}
	avgMeal := entry.AvgMealCOP
	if avgMeal == 0 {
		avgMeal = defaultAvgMealCOP
	}
	travelTime := entry.TravelTime
	if travelTime == "" {
		travelTime = logistics.TravelTime
	}

	return &response_models.Destination{
		Title:       entry.Title,
		Region:      string(entry.Region),
		Description: entry.Description,
		ImageURL:    entry.ImageURL,
		Budget: response_models.Budget{
			BusTicketCOP: busTicket,
			AvgMealCOP:   avgMeal,
		},
		Accessibility: response_models.Accessibility{
			Score:      entry.Accessibility,
			Wheelchair: entry.Wheelchair,
		},
		SecurityStatus: response_models.SecuritySafe,
		RoadState:      defaultRoadState,
		TravelTime:     travelTime,
		Terminal:       fmt.Sprintf("Terminal del %s", logistics.Terminal),
		MarketDay:      logistics.MarketDay,
		Carriers:       logistics.Carriers,
		Tips: &response_models.Tips{
			Food:      entry.TipFood,
			Culture:   entry.TipCulture,
			Logistics: fmt.Sprintf("Buses %s desde la Terminal del %s", logistics.Frequency, logistics.Terminal),
		},
	}
}

func (r *ResolverService) fromMunicipality(name string) *response_models.Destination {
	region := gazetteer.RegionOf(name)
	logistics := gazetteer.LogisticsFor(region)

	return &response_models.Destination{
		Title:  name,
		Region: string(region),
		Description: fmt.Sprintf(
			"%s es un municipio de Antioquia con plaza tradicional, iglesia y paisaje cafetero. Pregunta en la alcaldía o la casa de la cultura por rutas y festividades locales.",
			name),
		ImageURL: placeholderImageURL,
		Budget: response_models.Budget{
			BusTicketCOP: defaultBusTicketCOP,
			AvgMealCOP:   defaultAvgMealCOP,
		},
		Accessibility: response_models.Accessibility{
			Score:      50,
			Wheelchair: false,
		},
		SecurityStatus: response_models.SecuritySafe,
		RoadState:      defaultRoadState,
		TravelTime:     logistics.TravelTime,
		Terminal:       fmt.Sprintf("Terminal del %s", logistics.Terminal),
		MarketDay:      logistics.MarketDay,
		Carriers:       logistics.Carriers,
	}
}
