// Package gazetteer holds the static tables the resolver and suggestion
// engine work from: the nine Antioquia subregions, the full municipality
// list, a small set of curated town entries with imagery, and per-region
// logistics defaults. Everything here is immutable after init.
package gazetteer

import (
	"sync"

	"paisalocal/pkg/utils"
)

// Entry is a curated seed record for a well-known town.
type Entry struct {
	Title        string
	Region       Region
	Description  string
	ImageURL     string
	BusTicketCOP int
	AvgMealCOP   int
	Accessibility int
	Wheelchair   bool
	TravelTime   string
	TipFood      string
	TipCulture   string
}

var entries = []Entry{
	{
		Title:        "Guatapé",
		Region:       RegionOriente,
		Description:  "Pueblo de zócalos multicolores a orillas del embalse, al pie de la Piedra del Peñol y sus 740 escalones.",
		ImageURL:     "https://images.paisalocal.co/towns/guatape.jpg",
		BusTicketCOP: 18000,
		AvgMealCOP:   22000,
		Accessibility: 65,
		Wheelchair:   false,
		TravelTime:   "2 horas desde Medellín",
		TipFood:      "Prueba la trucha con patacón frente al malecón.",
		TipCulture:   "Cada zócalo cuenta la historia de la casa que decora.",
	},
	{
		Title:        "Jardín",
		Region:       RegionSuroeste,
		Description:  "Pueblo cafetero de fachadas coloridas y plaza sombreada, rodeado de cascadas y reservas del gallito de roca.",
		ImageURL:     "https://images.paisalocal.co/towns/jardin.jpg",
		BusTicketCOP: 30000,
		AvgMealCOP:   18000,
		Accessibility: 60,
		Wheelchair:   false,
		TravelTime:   "3.5 horas desde Medellín",
		TipFood:      "Los dulces de la plaza y el café de origen son obligados.",
		TipCulture:   "Sube en la garrucha para ver el pueblo desde el alto.",
	},
	{
		Title:        "Jericó",
		Region:       RegionSuroeste,
		Description:  "Cuna de la Madre Laura, museos, carrieles y balcones floridos sobre el cañón del río Cauca.",
		ImageURL:     "https://images.paisalocal.co/towns/jerico.jpg",
		BusTicketCOP: 28000,
		AvgMealCOP:   17000,
		Accessibility: 55,
		Wheelchair:   false,
		TravelTime:   "3 horas desde Medellín",
		TipFood:      "Cata de café en las tiendas alrededor del parque.",
		TipCulture:   "El carriel jericoano es patrimonio artesanal.",
	},
	{
		Title:        "Santa Fe de Antioquia",
		Region:       RegionOccidente,
		Description:  "Antigua capital colonial de calles empedradas, iglesias del siglo XVII y el Puente de Occidente.",
		ImageURL:     "https://images.paisalocal.co/towns/santafe.jpg",
		BusTicketCOP: 14000,
		AvgMealCOP:   20000,
		Accessibility: 70,
		Wheelchair:   true,
		TravelTime:   "1.5 horas desde Medellín",
		TipFood:      "El pulpo de tamarindo es el dulce típico del pueblo.",
		TipCulture:   "Camina el Puente de Occidente al atardecer.",
	},
	{
		Title:        "San Rafael",
		Region:       RegionOriente,
		Description:  "Charcos cristalinos y senderos de selva húmeda; uno de los mejores destinos de río del Oriente.",
		ImageURL:     "https://images.paisalocal.co/towns/sanrafael.jpg",
		BusTicketCOP: 22000,
		AvgMealCOP:   15000,
		Accessibility: 50,
		Wheelchair:   false,
		TravelTime:   "2.5 horas desde Medellín",
		TipFood:      "Sancocho de río en las fondas camino a los charcos.",
		TipCulture:   "Pregunta por los charcos menos visitados a los locales.",
	},
	{
		Title:        "Támesis",
		Region:       RegionSuroeste,
		Description:  "Petroglifos precolombinos, cuevas y cascadas entre cultivos de café y cítricos.",
		ImageURL:     "https://images.paisalocal.co/towns/tamesis.jpg",
		BusTicketCOP: 32000,
		AvgMealCOP:   16000,
		Accessibility: 50,
		Wheelchair:   false,
		TravelTime:   "3.5 horas desde Medellín",
		TipFood:      "Jugos de naranja recién exprimidos en la plaza.",
		TipCulture:   "Ruta guiada de petroglifos desde la casa de la cultura.",
	},
	{
		Title:        "Urrao",
		Region:       RegionSuroeste,
		Description:  "Puerta de entrada al páramo del Sol, valles ganaderos y el cañón de La Encarnación.",
		ImageURL:     "https://images.paisalocal.co/towns/urrao.jpg",
		BusTicketCOP: 38000,
		AvgMealCOP:   14000,
		Accessibility: 40,
		Wheelchair:   false,
		TravelTime:   "4.5 horas desde Medellín",
		TipFood:      "La leche y el queso de la región son famosos.",
		TipCulture:   "El páramo exige guía local y buen estado físico.",
	},
	{
		Title:        "Santa Rosa de Osos",
		Region:       RegionNorte,
		Description:  "Altiplano frío de iglesias de piedra, tradición lechera y neblina sobre los potreros.",
		ImageURL:     "https://images.paisalocal.co/towns/santarosa.jpg",
		BusTicketCOP: 16000,
		AvgMealCOP:   13000,
		Accessibility: 60,
		Wheelchair:   false,
		TravelTime:   "2 horas desde Medellín",
		TipFood:      "Quesito antioqueño directo de las queseras.",
		TipCulture:   "La catedral y el museo de Porfirio Barba Jacob.",
	},
}

// normalizeKey is the comparison key used across all static tables.
func normalizeKey(s string) string { return utils.Normalize(s) }

var (
	entryIndexOnce sync.Once
	entryIndex     map[string]*Entry
)

// FindEntry looks up a curated entry by normalized title.
func FindEntry(query string) (*Entry, bool) {
	entryIndexOnce.Do(func() {
		entryIndex = make(map[string]*Entry, len(entries))
		for i := range entries {
			entryIndex[normalizeKey(entries[i].Title)] = &entries[i]
		}
	})
	e, ok := entryIndex[normalizeKey(query)]
	return e, ok
}

// Entries returns the curated seed table.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
