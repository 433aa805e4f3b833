package models

import (
	"time"

	"gorm.io/datatypes"
)

type Photo struct {
	BaseModel

	Name     string                      `json:"name"`
	Event    string                      `json:"event"`
	Location string                      `json:"location"`
	TakenAt  *time.Time                  `json:"taken_at"`
	Tags     datatypes.JSONSlice[string] `json:"tags"`

	// FilePath is the object storage path inside the photos bucket,
	// owned exclusively by this record.
	FilePath string `json:"file_path"`

	// FileURL is derived from FilePath when the record is served.
	FileURL string `json:"file_url" gorm:"-"`

	Published bool `json:"published"`

	CategoryID uint     `json:"category_id"`
	Category   Category `json:"category" gorm:"constraint:OnDelete:RESTRICT"`
}
