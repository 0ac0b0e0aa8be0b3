package db_models

// Asset is a locally stored media object. Remote assets live in the blob
// store and are listed through its API, not through this table.
type Asset struct {
	BaseModel
	Path        string `gorm:"uniqueIndex"`
	URL         string
	ContentType string
	Data        []byte `gorm:"type:bytea"`
}
