package gazetteer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindEntry(t *testing.T) {
	accented, ok := FindEntry("Guatapé")
	require.True(t, ok)

	plain, ok := FindEntry("guatape")
	require.True(t, ok)

	assert.Equal(t, accented, plain)
	assert.Equal(t, RegionOriente, accented.Region)
}

func TestFindEntryMiss(t *testing.T) {
	_, ok := FindEntry("Bogotá")
	assert.False(t, ok)
}

func TestRegionOf(t *testing.T) {
	assert.Equal(t, RegionSuroeste, RegionOf("Jardín"))
	assert.Equal(t, RegionSuroeste, RegionOf("jardin"))
	assert.Equal(t, RegionUraba, RegionOf("Turbo"))
	assert.Equal(t, RegionUnclassified, RegionOf("Cartagena"))
}

func TestParseRegion(t *testing.T) {
	assert.Equal(t, RegionOriente, ParseRegion("Oriente"))
	assert.Equal(t, RegionValleDeAburra, ParseRegion("Valle de Aburra"))
	assert.Equal(t, RegionUraba, ParseRegion("uraba"))
	assert.Equal(t, RegionUnclassified, ParseRegion("Cundinamarca"))
	assert.Equal(t, RegionUnclassified, ParseRegion(""))
}

func TestBestMunicipalityExact(t *testing.T) {
	name, ok := BestMunicipality("jardin")
	require.True(t, ok)
	assert.Equal(t, "Jardín", name)
}

func TestBestMunicipalityContainment(t *testing.T) {
	// "guatap" is not an exact name but is contained in "Guatapé".
	name, ok := BestMunicipality("guatap")
	require.True(t, ok)
	assert.Equal(t, "Guatapé", name)
}

func TestBestMunicipalityPrefersExactOverContainment(t *testing.T) {
	// "andes" is an exact municipality even though other names contain it.
	name, ok := BestMunicipality("Andes")
	require.True(t, ok)
	assert.Equal(t, "Andes", name)
}

func TestBestMunicipalityCoverageTieBreak(t *testing.T) {
	// "bello" matches Bello exactly; Montebello only by containment.
	name, ok := BestMunicipality("bello")
	require.True(t, ok)
	assert.Equal(t, "Bello", name)
}

func TestBestMunicipalityShortQuery(t *testing.T) {
	_, ok := BestMunicipality("a")
	assert.False(t, ok)

	_, ok = BestMunicipality("¡!")
	assert.False(t, ok)
}

func TestBestMunicipalityMiss(t *testing.T) {
	_, ok := BestMunicipality("cartagena")
	assert.False(t, ok)
}

func TestBestMunicipalityDeterministic(t *testing.T) {
	first, ok := BestMunicipality("san")
	require.True(t, ok)
	for i := 0; i < 5; i++ {
		again, ok := BestMunicipality("san")
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}

func TestMunicipalitiesTable(t *testing.T) {
	names := Municipalities()
	assert.Greater(t, len(names), 120)

	seen := make(map[string]bool)
	for _, n := range names {
		assert.False(t, seen[n], "duplicate municipality %q", n)
		seen[n] = true
		assert.NotEqual(t, RegionUnclassified, RegionOf(n))
	}
}

func TestLogisticsForCoversAllRegions(t *testing.T) {
	for _, r := range Regions {
		l := LogisticsFor(r)
		assert.NotEmpty(t, l.Terminal, "region %s", r)
		assert.Positive(t, l.AvgFareCOP, "region %s", r)
		assert.NotEmpty(t, l.Carriers, "region %s", r)
	}
	// Unknown regions fall back to unclassified defaults.
	assert.Equal(t, LogisticsFor(RegionUnclassified), LogisticsFor(Region("nope")))
}
