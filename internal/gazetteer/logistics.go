package gazetteer

// Logistics is the per-region static record of transport defaults. Loaded at
// startup, never mutated.
type Logistics struct {
	Terminal   string
	AvgFareCOP int
	TravelTime string
	Frequency  string
	MarketDay  string
	Carriers   []string
}

var logisticsDefaults = map[Region]Logistics{
	RegionValleDeAburra: {
		Terminal:   "Norte",
		AvgFareCOP: 5000,
		TravelTime: "menos de 1 hora",
		Frequency:  "cada 15 minutos",
		MarketDay:  "sábado",
		Carriers:   []string{"Metro de Medellín", "Hato Viejo"},
	},
	RegionOriente: {
		Terminal:   "Norte",
		AvgFareCOP: 20000,
		TravelTime: "2 horas",
		Frequency:  "cada 30 minutos",
		MarketDay:  "domingo",
		Carriers:   []string{"Sotrasanvicente", "Cootransor", "Flota Granada"},
	},
	RegionOccidente: {
		Terminal:   "Norte",
		AvgFareCOP: 15000,
		TravelTime: "1.5 horas",
		Frequency:  "cada 30 minutos",
		MarketDay:  "domingo",
		Carriers:   []string{"Sotraurabá", "Gómez Hernández"},
	},
	RegionNorte: {
		Terminal:   "Norte",
		AvgFareCOP: 18000,
		TravelTime: "2.5 horas",
		Frequency:  "cada hora",
		MarketDay:  "sábado",
		Carriers:   []string{"Coonorte", "Rápido Ochoa"},
	},
	RegionNordeste: {
		Terminal:   "Norte",
		AvgFareCOP: 35000,
		TravelTime: "4 horas",
		Frequency:  "cada 2 horas",
		MarketDay:  "sábado",
		Carriers:   []string{"Coonorte", "Sotracauca"},
	},
	RegionSuroeste: {
		Terminal:   "Sur",
		AvgFareCOP: 30000,
		TravelTime: "3 horas",
		Frequency:  "cada hora",
		MarketDay:  "domingo",
		Carriers:   []string{"Rápido Ochoa", "Transportes Suroeste"},
	},
	RegionBajoCauca: {
		Terminal:   "Norte",
		AvgFareCOP: 55000,
		TravelTime: "6 horas",
		Frequency:  "cada 3 horas",
		MarketDay:  "sábado",
		Carriers:   []string{"Rápido Ochoa", "Brasilia"},
	},
	RegionMagdalenaMedio: {
		Terminal:   "Norte",
		AvgFareCOP: 45000,
		TravelTime: "5 horas",
		Frequency:  "cada 2 horas",
		MarketDay:  "domingo",
		Carriers:   []string{"Coonorte", "Brasilia"},
	},
	RegionUraba: {
		Terminal:   "Norte",
		AvgFareCOP: 80000,
		TravelTime: "8 horas",
		Frequency:  "3 salidas diarias",
		MarketDay:  "sábado",
		Carriers:   []string{"Sotraurabá", "Gómez Hernández"},
	},
	RegionUnclassified: {
		Terminal:   "Norte",
		AvgFareCOP: 25000,
		TravelTime: "consultar en terminal",
		Frequency:  "consultar en terminal",
		MarketDay:  "domingo",
		Carriers:   []string{"Rápido Ochoa"},
	},
}

// LogisticsFor returns the transport defaults for a region. Unknown regions
// get the unclassified defaults so callers never deal with a zero value.
func LogisticsFor(r Region) Logistics {
	if l, ok := logisticsDefaults[r]; ok {
		return l
	}
	return logisticsDefaults[RegionUnclassified]
}
