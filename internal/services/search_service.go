package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"paisalocal/internal/gazetteer"
	"paisalocal/internal/infra"
	"paisalocal/internal/models/response_models"
	"paisalocal/internal/providers/images"
	"paisalocal/pkg/utils"
)

const (
	maxGroundingLinks     = 3
	defaultSearchImageURL = "https://images.paisalocal.co/placeholder/antioquia.jpg"
)

type SearchServiceInterface interface {
	// Search merges the local resolver's hit with AI-suggested destinations
	// and resolves an image for each through the provider waterfall. It
	// fails soft: external failure degrades to local-only, never an error.
	Search(ctx context.Context, query, language string) []response_models.Destination
	// Latest returns the newest completed result set. Responses that lose
	// the race to a newer request never overwrite it.
	Latest() []response_models.Destination
}

type SearchService struct {
	resolver  ResolverServiceInterface
	generator utils.DestinationGeneratorInterface
	media     MediaServiceInterface
	providers []images.Provider
	metrics   *infra.Metrics
	logger    *zap.Logger

	requestSeq atomic.Uint64
	mu         sync.RWMutex
	latestSeq  uint64
	latest     []response_models.Destination
}

func NewSearchService(
	resolver ResolverServiceInterface,
	generator utils.DestinationGeneratorInterface,
	media MediaServiceInterface,
	providers []images.Provider,
	metrics *infra.Metrics,
	logger *zap.Logger,
) SearchServiceInterface {
	return &SearchService{
		resolver:  resolver,
		generator: generator,
		media:     media,
		providers: providers,
		metrics:   metrics,
		logger:    logger,
	}
}

func (s *SearchService) Search(ctx context.Context, query, language string) []response_models.Destination {
	token := s.requestSeq.Add(1)
	s.metrics.SearchesTotal.Inc()

	local, hasLocal := s.resolver.ResolveLocal(query)
	external, keywords := s.externalResults(ctx, query, language)

	s.resolveImages(ctx, external, keywords)

	results := s.merge(ctx, local, hasLocal, external)
	s.publish(token, results)
	return results
}

func (s *SearchService) Latest() []response_models.Destination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]response_models.Destination, len(s.latest))
	copy(out, s.latest)
	return out
}

// publish installs results as the latest snapshot unless a newer request
// already published. This is the stale-response guard.
func (s *SearchService) publish(token uint64, results []response_models.Destination) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token > s.latestSeq {
		s.latestSeq = token
		s.latest = results
	}
}

// externalResults calls the generative provider and shapes its suggestions
// into destinations, deduplicated by case-insensitive title. The second
// return value carries each result's AI-suggested image keyword for the
// waterfall. Any failure is logged and degrades to no results.
func (s *SearchService) externalResults(ctx context.Context, query, language string) ([]response_models.Destination, []string) {
	if !s.generator.Available() {
		return nil, nil
	}

	suggestions, sources, err := s.generator.GenerateDestinations(ctx, query, language)
	if err != nil {
		s.metrics.GeneratorFailTotal.Inc()
		s.logger.Warn("generative provider failed", zap.String("query", query), zap.Error(err))
		return nil, nil
	}
	if len(suggestions) == 0 {
		s.metrics.GeneratorFailTotal.Inc()
		return nil, nil
	}

	links := groundingLinks(sources)

	seen := make(map[string]bool, len(suggestions))
	results := make([]response_models.Destination, 0, len(suggestions))
	keywords := make([]string, 0, len(suggestions))
	for _, sg := range suggestions {
		key := strings.ToLower(sg.Title)
		if seen[key] {
			continue
		}
		seen[key] = true
		results = append(results, destinationFromSuggestion(sg, links))
		keywords = append(keywords, sg.ImageKeyword)
	}
	return results, keywords
}

func destinationFromSuggestion(sg utils.SuggestedDestination, links []response_models.GroundingLink) response_models.Destination {
	region := gazetteer.ParseRegion(sg.Region)
	logistics := gazetteer.LogisticsFor(region)

	busTicket := sg.BusTicketCOP
	if busTicket == 0 {
		busTicket = logistics.AvgFareCOP
	}
	avgMeal := sg.AvgMealCOP
	if avgMeal == 0 {
		avgMeal = defaultAvgMealCOP
	}
	travelTime := sg.TravelTime
	if travelTime == "" {
		travelTime = logistics.TravelTime
	}

	security := sg.SecurityStatus
	switch security {
	case response_models.SecuritySafe, response_models.SecurityCaution, response_models.SecurityCritical:
	default:
		security = response_models.SecuritySafe
	}

	return response_models.Destination{
		Title:       sg.Title,
		Region:      string(region),
		Description: sg.Description,
		Budget: response_models.Budget{
			BusTicketCOP: busTicket,
			AvgMealCOP:   avgMeal,
		},
		Accessibility: response_models.Accessibility{
			Score:      50,
			Wheelchair: false,
		},
		SecurityStatus: security,
		RoadState:      defaultRoadState,
		TravelTime:     travelTime,
		Terminal:       fmt.Sprintf("Terminal del %s", logistics.Terminal),
		MarketDay:      logistics.MarketDay,
		Carriers:       logistics.Carriers,
		Links:          links,
	}
}

func groundingLinks(sources []utils.GroundingSource) []response_models.GroundingLink {
	if len(sources) == 0 {
		return nil
	}
	if len(sources) > maxGroundingLinks {
		sources = sources[:maxGroundingLinks]
	}
	links := make([]response_models.GroundingLink, 0, len(sources))
	for _, src := range sources {
		links = append(links, response_models.GroundingLink{
			Title: src.Title,
			URI:   src.URI,
			Kind:  "official",
		})
	}
	return links
}

// resolveImages runs the waterfall for every external result. Resolution is
// concurrent across results; the slice order is fixed by index so completion
// order never reorders results.
func (s *SearchService) resolveImages(ctx context.Context, results []response_models.Destination, keywords []string) {
	g, gctx := errgroup.WithContext(ctx)
	for i := range results {
		i := i
		keyword := ""
		if i < len(keywords) {
			keyword = keywords[i]
		}
		g.Go(func() error {
			results[i].ImageURL = s.resolveImage(gctx, results[i].Title, keyword)
			return nil
		})
	}
	_ = g.Wait()
}

// resolveImage walks the waterfall for one destination: local/remote blob
// match, then each image provider in priority order, then the static
// default. Each stage runs only when the prior one missed.
func (s *SearchService) resolveImage(ctx context.Context, title, keyword string) string {
	if url, ok := s.media.FindAssetByName(ctx, title); ok {
		s.metrics.ImageStageTotal.WithLabelValues(infra.StageBlob).Inc()
		return url
	}

	queries := []string{
		keyword,
		title + " Colombia",
	}
	if keyword == "" {
		queries[0] = title + " Antioquia"
	}
	stages := []string{infra.StagePrimary, infra.StageFallback}

	for i, provider := range s.providers {
		if i >= len(queries) {
			break
		}
		if !provider.Available() {
			continue
		}
		url, err := provider.Search(ctx, queries[i])
		if err != nil {
			s.logger.Warn("image provider failed",
				zap.String("provider", provider.Name()), zap.Error(err))
			continue
		}
		if url != "" {
			s.metrics.ImageStageTotal.WithLabelValues(stages[i]).Inc()
			return url
		}
	}

	s.metrics.ImageStageTotal.WithLabelValues(infra.StageDefault).Inc()
	return defaultSearchImageURL
}

// merge places the local hit first. A title collision with an external
// result upgrades that result's image instead of duplicating the entry.
func (s *SearchService) merge(
	ctx context.Context,
	local *response_models.Destination,
	hasLocal bool,
	external []response_models.Destination,
) []response_models.Destination {
	if !hasLocal {
		if external == nil {
			return []response_models.Destination{}
		}
		return external
	}

	for i := range external {
		if strings.EqualFold(external[i].Title, local.Title) {
			if url, ok := s.media.FindAssetByName(ctx, local.Title); ok {
				external[i].ImageURL = url
			}
			return external
		}
	}

	upgraded := *local
	if url, ok := s.media.FindAssetByName(ctx, local.Title); ok {
		upgraded.ImageURL = url
	}
	return append([]response_models.Destination{upgraded}, external...)
}
