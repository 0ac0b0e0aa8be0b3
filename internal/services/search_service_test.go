package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"paisalocal/internal/infra"
	"paisalocal/internal/models/db_models"
	"paisalocal/internal/models/response_models"
	"paisalocal/internal/providers/images"
	"paisalocal/pkg/utils"
)

type fakeGenerator struct {
	available   bool
	suggestions []utils.SuggestedDestination
	sources     []utils.GroundingSource
	err         error
}

func (f *fakeGenerator) Available() bool { return f.available }

func (f *fakeGenerator) GenerateDestinations(ctx context.Context, query, language string) ([]utils.SuggestedDestination, []utils.GroundingSource, error) {
	return f.suggestions, f.sources, f.err
}

type fakeMedia struct {
	assets map[string]string
	calls  int
}

func (f *fakeMedia) FindAssetByName(ctx context.Context, name string) (string, bool) {
	f.calls++
	url, ok := f.assets[utils.Normalize(name)]
	return url, ok
}

func (f *fakeMedia) Upload(ctx context.Context, name, contentType string, data []byte) (response_models.Asset, error) {
	return response_models.Asset{}, nil
}
func (f *fakeMedia) List(ctx context.Context) ([]response_models.Asset, error) { return nil, nil }
func (f *fakeMedia) Delete(ctx context.Context, path string) error             { return nil }
func (f *fakeMedia) GetLocalFile(ctx context.Context, path string) (*db_models.Asset, error) {
	return nil, nil
}
func (f *fakeMedia) SetToken(token string) {}

type fakeProvider struct {
	name    string
	url     string
	err     error
	down    bool
	queries []string
}

func (f *fakeProvider) Name() string    { return f.name }
func (f *fakeProvider) Available() bool { return !f.down }

func (f *fakeProvider) Search(ctx context.Context, query string) (string, error) {
	f.queries = append(f.queries, query)
	return f.url, f.err
}

func newTestSearch(gen utils.DestinationGeneratorInterface, media MediaServiceInterface, providers ...images.Provider) *SearchService {
	return &SearchService{
		resolver:  NewResolverService(zap.NewNop()),
		generator: gen,
		media:     media,
		providers: providers,
		metrics:   infra.NewMetrics(),
		logger:    zap.NewNop(),
	}
}

func TestSearchLocalOnlyWhenGeneratorUnavailable(t *testing.T) {
	svc := newTestSearch(&fakeGenerator{available: false}, &fakeMedia{})

	results := svc.Search(context.Background(), "Guatapé", "es")

	require.Len(t, results, 1)
	assert.Equal(t, "Guatapé", results[0].Title)
}

func TestSearchFailsSoftOnGeneratorError(t *testing.T) {
	gen := &fakeGenerator{available: true, err: errors.New("quota exceeded")}
	svc := newTestSearch(gen, &fakeMedia{})

	results := svc.Search(context.Background(), "Jardín", "es")

	require.Len(t, results, 1)
	assert.Equal(t, "Jardín", results[0].Title)
}

func TestSearchEmptyOnTotalMiss(t *testing.T) {
	svc := newTestSearch(&fakeGenerator{available: false}, &fakeMedia{})

	results := svc.Search(context.Background(), "Cartagena de Indias", "es")

	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearchMergeDeduplicatesByTitle(t *testing.T) {
	gen := &fakeGenerator{
		available: true,
		suggestions: []utils.SuggestedDestination{
			{Title: "guatapé", Region: "Oriente", Description: "Piedra y zócalos."},
			{Title: "San Rafael", Region: "Oriente", Description: "Charcos cristalinos."},
		},
	}
	media := &fakeMedia{assets: map[string]string{
		"guatape": "https://cdn.example.com/guatape.jpg",
	}}
	svc := newTestSearch(gen, media)

	results := svc.Search(context.Background(), "Guatapé", "es")

	require.Len(t, results, 2)
	// The colliding external entry absorbs the local hit and keeps the
	// blob-matched image.
	assert.Equal(t, "guatapé", results[0].Title)
	assert.Equal(t, "https://cdn.example.com/guatape.jpg", results[0].ImageURL)
	assert.Equal(t, "San Rafael", results[1].Title)
}

func TestSearchLocalHitComesFirst(t *testing.T) {
	gen := &fakeGenerator{
		available: true,
		suggestions: []utils.SuggestedDestination{
			{Title: "Jericó", Region: "Suroeste", Description: "Pueblo patrimonio."},
		},
	}
	svc := newTestSearch(gen, &fakeMedia{})

	results := svc.Search(context.Background(), "Guatapé", "es")

	require.Len(t, results, 2)
	assert.Equal(t, "Guatapé", results[0].Title)
	assert.Equal(t, "Jericó", results[1].Title)
}

func TestSearchExternalRegionIsValidated(t *testing.T) {
	gen := &fakeGenerator{
		available: true,
		suggestions: []utils.SuggestedDestination{
			{Title: "Pueblo Inventado", Region: "Costa Caribe", Description: "No existe."},
		},
	}
	svc := newTestSearch(gen, &fakeMedia{})

	results := svc.Search(context.Background(), "zz no local", "es")

	require.Len(t, results, 1)
	assert.Equal(t, "Sin clasificar", results[0].Region)
	assert.Equal(t, response_models.SecuritySafe, results[0].SecurityStatus)
}

func TestResolveImageBlobShortCircuitsProviders(t *testing.T) {
	media := &fakeMedia{assets: map[string]string{
		"jardin": "https://cdn.example.com/jardin.jpg",
	}}
	primary := &fakeProvider{name: "pexels", url: "https://pexels.example/x.jpg"}
	svc := newTestSearch(&fakeGenerator{}, media, primary)

	url := svc.resolveImage(context.Background(), "Jardín", "pueblo jardín")

	assert.Equal(t, "https://cdn.example.com/jardin.jpg", url)
	assert.Empty(t, primary.queries, "provider must not be called after a blob hit")
}

func TestResolveImageWaterfallOrder(t *testing.T) {
	primary := &fakeProvider{name: "pexels", url: ""}
	fallback := &fakeProvider{name: "unsplash", url: "https://unsplash.example/y.jpg"}
	svc := newTestSearch(&fakeGenerator{}, &fakeMedia{}, primary, fallback)

	url := svc.resolveImage(context.Background(), "Támesis", "cascadas tamesis")

	assert.Equal(t, "https://unsplash.example/y.jpg", url)
	assert.Equal(t, []string{"cascadas tamesis"}, primary.queries)
	assert.Equal(t, []string{"Támesis Colombia"}, fallback.queries)
}

func TestResolveImageKeywordDefaultsToTitle(t *testing.T) {
	primary := &fakeProvider{name: "pexels", url: "https://pexels.example/z.jpg"}
	svc := newTestSearch(&fakeGenerator{}, &fakeMedia{}, primary)

	svc.resolveImage(context.Background(), "Urrao", "")

	assert.Equal(t, []string{"Urrao Antioquia"}, primary.queries)
}

func TestResolveImageFallsBackToDefault(t *testing.T) {
	primary := &fakeProvider{name: "pexels", err: errors.New("rate limited")}
	fallback := &fakeProvider{name: "unsplash", down: true}
	svc := newTestSearch(&fakeGenerator{}, &fakeMedia{}, primary, fallback)

	url := svc.resolveImage(context.Background(), "Sonsón", "")

	assert.Equal(t, defaultSearchImageURL, url)
}

func TestPublishIgnoresStaleResponses(t *testing.T) {
	svc := newTestSearch(&fakeGenerator{}, &fakeMedia{})

	newer := []response_models.Destination{{Title: "Jericó"}}
	older := []response_models.Destination{{Title: "Guatapé"}}

	svc.publish(2, newer)
	svc.publish(1, older)

	latest := svc.Latest()
	require.Len(t, latest, 1)
	assert.Equal(t, "Jericó", latest[0].Title)
}

func TestLatestReturnsCopy(t *testing.T) {
	svc := newTestSearch(&fakeGenerator{}, &fakeMedia{})
	svc.publish(1, []response_models.Destination{{Title: "Guatapé"}})

	first := svc.Latest()
	first[0].Title = "mutated"

	assert.Equal(t, "Guatapé", svc.Latest()[0].Title)
}
