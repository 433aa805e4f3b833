package services

import (
	"context"
	"errors"
	"strings"

	"github.com/evelanca/backstage/pkg/internal/database"
	"github.com/evelanca/backstage/pkg/internal/models"
	"github.com/evelanca/backstage/pkg/internal/storage"
	"gorm.io/gorm"
)

const publicationAssetPrefix = "covers"

func FilterPublicationWithFuzzySearch(tx *gorm.DB, probe string) *gorm.DB {
	if len(probe) == 0 {
		return tx
	}

	probe = "%" + strings.ToLower(probe) + "%"
	return tx.Where(
		"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(publisher) LIKE ? OR LOWER(CAST(tags AS TEXT)) LIKE ?",
		probe, probe, probe, probe,
	)
}

func FilterPublicationWithCategory(tx *gorm.DB, id uint) *gorm.DB {
	return tx.Where("category_id = ?", id)
}

func FilterPublicationWithYear(tx *gorm.DB, year int) *gorm.DB {
	if year <= 0 {
		return tx
	}
	return tx.Where("published_year = ?", year)
}

func FilterPublicationPublished(tx *gorm.DB) *gorm.DB {
	return tx.Where("published = ?", true)
}

func CountPublication(tx *gorm.DB) (int64, error) {
	var count int64
	err := tx.Model(&models.Publication{}).Count(&count).Error

	return count, err
}

func ListPublication(tx *gorm.DB, take int, offset int) ([]models.Publication, error) {
	if take <= 0 || take > 100 {
		take = 20
	}

	var items []models.Publication
	if err := tx.Preload("Category").
		Order("created_at DESC").
		Offset(offset).Limit(take).
		Find(&items).Error; err != nil {
		return items, err
	}

	for idx := range items {
		items[idx].CoverURL = AssetURL(storage.BucketPublications, items[idx].CoverPath)
	}

	return items, nil
}

func GetPublication(id uint) (models.Publication, error) {
	var item models.Publication
	if err := database.C.Preload("Category").First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, &models.NotFoundError{Resource: "publication"}
		}
		return item, err
	}

	item.CoverURL = AssetURL(storage.BucketPublications, item.CoverPath)

	return item, nil
}

// GetFeaturedPublication backs the featured book pick: newest record still
// flagged featured under the current filter, or none.
func GetFeaturedPublication(tx *gorm.DB) (*models.Publication, error) {
	var item models.Publication
	if err := tx.Where("featured = ?", true).
		Preload("Category").
		Order("created_at DESC").
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	item.CoverURL = AssetURL(storage.BucketPublications, item.CoverPath)

	return &item, nil
}

func NewPublication(ctx context.Context, item models.Publication, cover *storage.Upload) (models.Publication, error) {
	if _, err := EnsureCategory(models.CategoryKindPublication, item.CategoryID); err != nil {
		return item, err
	}

	if len(item.Language) == 0 {
		item.Language = DetectLanguage(item.Title)
	}

	if cover != nil {
		path, err := storage.UploadFile(ctx, storage.BucketPublications, publicationAssetPrefix, *cover)
		if err != nil {
			return item, err
		}
		item.CoverPath = path
	}

	if err := database.C.Omit("Category").Create(&item).Error; err != nil {
		CleanupAsset(storage.BucketPublications, item.CoverPath)
		return item, err
	}

	return item, nil
}

func EditPublication(ctx context.Context, item models.Publication, cover *storage.Upload, clearCover bool) (models.Publication, error) {
	if _, err := EnsureCategory(models.CategoryKindPublication, item.CategoryID); err != nil {
		return item, err
	}

	var current models.Publication
	if err := database.C.Select("cover_path").First(&current, "id = ?", item.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, &models.NotFoundError{Resource: "publication"}
		}
		return item, err
	}
	previous := current.CoverPath

	switch {
	case cover != nil:
		path, err := storage.UploadFile(ctx, storage.BucketPublications, publicationAssetPrefix, *cover)
		if err != nil {
			return item, err
		}
		item.CoverPath = path
	case clearCover:
		item.CoverPath = ""
	default:
		item.CoverPath = previous
	}

	if err := database.C.Omit("Category").Save(&item).Error; err != nil {
		if cover != nil {
			CleanupAsset(storage.BucketPublications, item.CoverPath)
		}
		return item, err
	}

	if len(previous) > 0 && previous != item.CoverPath {
		CleanupAsset(storage.BucketPublications, previous)
	}

	return item, nil
}

func DeletePublication(item models.Publication) error {
	if err := database.C.Delete(&item).Error; err != nil {
		return err
	}

	CleanupAsset(storage.BucketPublications, item.CoverPath)

	return nil
}
