package models

import "gorm.io/datatypes"

type Publication struct {
	BaseModel

	Title         string                      `json:"title"`
	Description   string                      `json:"description"`
	Publisher     string                      `json:"publisher"`
	TotalPages    int                         `json:"total_pages"`
	PublishedYear int                         `json:"published_year"`
	BuyURL        string                      `json:"buy_url"`
	Tags          datatypes.JSONSlice[string] `json:"tags"`
	Language      string                      `json:"language"`
	Featured      bool                        `json:"featured"`
	Published     bool                        `json:"published"`

	// CoverPath is the object storage path inside the publications bucket.
	CoverPath string `json:"cover_path"`

	// CoverURL is derived from CoverPath when the record is served.
	CoverURL string `json:"cover_url" gorm:"-"`

	CategoryID uint     `json:"category_id"`
	Category   Category `json:"category" gorm:"constraint:OnDelete:RESTRICT"`
}
