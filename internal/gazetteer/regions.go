package gazetteer

// Region is one of the nine Antioquia subregions. RegionUnclassified exists
// so the municipality fallback path never has to invent a value outside the
// closed set.
type Region string

const (
	RegionValleDeAburra  Region = "Valle de Aburrá"
	RegionOriente        Region = "Oriente"
	RegionOccidente      Region = "Occidente"
	RegionNorte          Region = "Norte"
	RegionNordeste       Region = "Nordeste"
	RegionSuroeste       Region = "Suroeste"
	RegionBajoCauca      Region = "Bajo Cauca"
	RegionMagdalenaMedio Region = "Magdalena Medio"
	RegionUraba          Region = "Urabá"
	RegionUnclassified   Region = "Sin clasificar"
)

// Regions lists the nine real subregions, excluding RegionUnclassified.
var Regions = []Region{
	RegionValleDeAburra,
	RegionOriente,
	RegionOccidente,
	RegionNorte,
	RegionNordeste,
	RegionSuroeste,
	RegionBajoCauca,
	RegionMagdalenaMedio,
	RegionUraba,
}

// ParseRegion maps free text (as returned by the generative provider) onto
// the closed region set, falling back to RegionUnclassified.
func ParseRegion(s string) Region {
	for _, r := range Regions {
		if string(r) == s {
			return r
		}
	}
	// Tolerate accent-free spellings from the provider.
	for _, r := range Regions {
		if normalizeKey(string(r)) == normalizeKey(s) {
			return r
		}
	}
	return RegionUnclassified
}
