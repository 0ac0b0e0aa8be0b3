package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"paisalocal/internal/gazetteer"
)

func newTestResolver() ResolverServiceInterface {
	return NewResolverService(zap.NewNop())
}

func TestResolveLocalShortQuery(t *testing.T) {
	r := newTestResolver()

	for _, q := range []string{"", "a", "¡!", "  é "} {
		_, ok := r.ResolveLocal(q)
		assert.False(t, ok, "query %q must not resolve", q)
	}
}

func TestResolveLocalAccentAndCaseInsensitive(t *testing.T) {
	r := newTestResolver()

	accented, ok := r.ResolveLocal("Guatapé")
	require.True(t, ok)

	plain, ok := r.ResolveLocal("guatape")
	require.True(t, ok)

	assert.Equal(t, accented, plain)
	assert.Equal(t, "Guatapé", accented.Title)
	assert.Equal(t, string(gazetteer.RegionOriente), accented.Region)
}

func TestResolveLocalGazetteerEnrichment(t *testing.T) {
	r := newTestResolver()

	dest, ok := r.ResolveLocal("Jardín")
	require.True(t, ok)

	logistics := gazetteer.LogisticsFor(gazetteer.RegionSuroeste)
	assert.Equal(t, "Terminal del "+logistics.Terminal, dest.Terminal)
	assert.Equal(t, logistics.MarketDay, dest.MarketDay)
	assert.NotEmpty(t, dest.RoadState)
	assert.Positive(t, dest.Budget.BusTicketCOP)
	assert.Positive(t, dest.Budget.AvgMealCOP)
	require.NotNil(t, dest.Tips)
	assert.NotEmpty(t, dest.Tips.Food)
}

func TestResolveLocalMunicipalityFallback(t *testing.T) {
	r := newTestResolver()

	// Caucasia is in the municipality list but has no curated entry.
	dest, ok := r.ResolveLocal("Caucasia")
	require.True(t, ok)

	assert.Equal(t, "Caucasia", dest.Title)
	assert.Contains(t, dest.Description, "Caucasia")
	assert.Equal(t, placeholderImageURL, dest.ImageURL)
	assert.Equal(t, defaultBusTicketCOP, dest.Budget.BusTicketCOP)
	assert.Equal(t, defaultAvgMealCOP, dest.Budget.AvgMealCOP)

	// The region is a real subregion from the lookup table, never a loose
	// literal outside the closed set.
	assert.Equal(t, string(gazetteer.RegionBajoCauca), dest.Region)
}

func TestResolveLocalMiss(t *testing.T) {
	r := newTestResolver()

	_, ok := r.ResolveLocal("Cartagena de Indias")
	assert.False(t, ok)
}
