package models

import (
	"time"

	"gorm.io/datatypes"
)

type Video struct {
	BaseModel

	Title           string                      `json:"title"`
	Description     string                      `json:"description"`
	YoutubeID       string                      `json:"youtube_id"`
	DurationSeconds int                         `json:"duration_seconds"`
	Location        string                      `json:"location"`
	RecordedAt      *time.Time                  `json:"recorded_at"`
	Tags            datatypes.JSONSlice[string] `json:"tags"`
	Language        string                      `json:"language"`
	Featured        bool                        `json:"featured"`
	Published       bool                        `json:"published"`

	CategoryID uint     `json:"category_id"`
	Category   Category `json:"category" gorm:"constraint:OnDelete:RESTRICT"`
}
