package response_models

// SecurityStatus values for a destination.
const (
	SecuritySafe     = "safe"
	SecurityCaution  = "caution"
	SecurityCritical = "critical"
)

type Budget struct {
	BusTicketCOP int `json:"bus_ticket_cop"`
	AvgMealCOP   int `json:"avg_meal_cop"`
}

type Accessibility struct {
	Score      int  `json:"score"`
	Wheelchair bool `json:"wheelchair"`
}

type Tips struct {
	Food      string `json:"food,omitempty"`
	Culture   string `json:"culture,omitempty"`
	Logistics string `json:"logistics,omitempty"`
	People    string `json:"people,omitempty"`
}

// GroundingLink is a citation attached to AI-generated content.
type GroundingLink struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
	Kind  string `json:"kind"`
}

// Destination is a full place record as rendered to the client. It is built
// fresh per search response; the persisted catalog row is db_models.Place.
type Destination struct {
	Title          string          `json:"title"`
	Region         string          `json:"region"`
	Description    string          `json:"description"`
	ImageURL       string          `json:"image_url"`
	Budget         Budget          `json:"budget"`
	Accessibility  Accessibility   `json:"accessibility"`
	SecurityStatus string          `json:"security_status"`
	RoadState      string          `json:"road_state"`
	TravelTime     string          `json:"travel_time"`
	Terminal       string          `json:"terminal"`
	MarketDay      string          `json:"market_day,omitempty"`
	Carriers       []string        `json:"carriers,omitempty"`
	Tips           *Tips           `json:"tips,omitempty"`
	Links          []GroundingLink `json:"links,omitempty"`
}
