package db_models

import "github.com/google/uuid"

type Review struct {
	BaseModel
	PlaceID    uuid.UUID `gorm:"index"`
	AuthorID   uuid.UUID
	AuthorName string
	Rating     int `gorm:"check:rating >= 1 AND rating <= 5"`
	Comment    string
}
