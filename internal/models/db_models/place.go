package db_models

import "github.com/lib/pq"

// Place is a catalog row for a destination. Budget amounts are Colombian
// pesos with no minor unit.
type Place struct {
	BaseModel
	Title              string `gorm:"uniqueIndex"`
	Region             string `gorm:"index"`
	Description        string
	ImageURL           string
	BusTicketCOP       int `gorm:"check:bus_ticket_cop >= 0"`
	AvgMealCOP         int `gorm:"check:avg_meal_cop >= 0"`
	AccessibilityScore int `gorm:"check:accessibility_score >= 0 AND accessibility_score <= 100"`
	Wheelchair         bool
	SecurityStatus     string
	RoadState          string
	TravelTime         string
	Terminal           string
	MarketDay          string
	Carriers           pq.StringArray `gorm:"type:text[]"`
	TipFood            string
	TipCulture         string
	TipLogistics       string
	TipPeople          string

	Reviews []Review `gorm:"foreignKey:PlaceID"`
}
