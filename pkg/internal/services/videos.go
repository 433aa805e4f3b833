package services

import (
	"errors"
	"strings"

	"github.com/evelanca/backstage/pkg/internal/database"
	"github.com/evelanca/backstage/pkg/internal/models"
	"gorm.io/gorm"
)

func FilterVideoWithFuzzySearch(tx *gorm.DB, probe string) *gorm.DB {
	if len(probe) == 0 {
		return tx
	}

	probe = "%" + strings.ToLower(probe) + "%"
	return tx.Where(
		"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(CAST(tags AS TEXT)) LIKE ?",
		probe, probe, probe,
	)
}

func FilterVideoWithCategory(tx *gorm.DB, id uint) *gorm.DB {
	return tx.Where("category_id = ?", id)
}

func FilterVideoWithStatus(tx *gorm.DB, status string) *gorm.DB {
	switch status {
	case "published":
		return tx.Where("published = ?", true)
	case "draft":
		return tx.Where("published = ?", false)
	default:
		return tx
	}
}

func FilterVideoPublished(tx *gorm.DB) *gorm.DB {
	return tx.Where("published = ?", true)
}

func CountVideo(tx *gorm.DB) (int64, error) {
	var count int64
	err := tx.Model(&models.Video{}).Count(&count).Error

	return count, err
}

func ListVideo(tx *gorm.DB, take int, offset int) ([]models.Video, error) {
	if take <= 0 || take > 100 {
		take = 20
	}

	var items []models.Video
	err := tx.Preload("Category").
		Order("created_at DESC").
		Offset(offset).Limit(take).
		Find(&items).Error

	return items, err
}

func GetVideo(id uint) (models.Video, error) {
	var item models.Video
	if err := database.C.Preload("Category").First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, &models.NotFoundError{Resource: "video"}
		}
		return item, err
	}
	return item, nil
}

// GetFeaturedVideo picks the newest record still flagged featured under the
// current filter; no flagged record means no pick, not an error.
func GetFeaturedVideo(tx *gorm.DB) (*models.Video, error) {
	var item models.Video
	if err := tx.Where("featured = ?", true).
		Preload("Category").
		Order("created_at DESC").
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func NewVideo(item models.Video) (models.Video, error) {
	if _, err := EnsureCategory(models.CategoryKindVideo, item.CategoryID); err != nil {
		return item, err
	}

	if len(item.Language) == 0 {
		item.Language = DetectLanguage(item.Title)
	}

	if err := database.C.Omit("Category").Create(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func EditVideo(item models.Video) (models.Video, error) {
	if _, err := EnsureCategory(models.CategoryKindVideo, item.CategoryID); err != nil {
		return item, err
	}

	err := database.C.Omit("Category").Save(&item).Error

	return item, err
}

func DeleteVideo(item models.Video) error {
	return database.C.Delete(&item).Error
}
