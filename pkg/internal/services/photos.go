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

const photoAssetPrefix = "gallery"

func FilterPhotoWithFuzzySearch(tx *gorm.DB, probe string) *gorm.DB {
	if len(probe) == 0 {
		return tx
	}

	probe = "%" + strings.ToLower(probe) + "%"
	return tx.Where(
		"LOWER(name) LIKE ? OR LOWER(event) LIKE ? OR LOWER(CAST(tags AS TEXT)) LIKE ?",
		probe, probe, probe,
	)
}

func FilterPhotoWithCategory(tx *gorm.DB, id uint) *gorm.DB {
	return tx.Where("category_id = ?", id)
}

func FilterPhotoPublished(tx *gorm.DB) *gorm.DB {
	return tx.Where("published = ?", true)
}

func CountPhoto(tx *gorm.DB) (int64, error) {
	var count int64
	err := tx.Model(&models.Photo{}).Count(&count).Error

	return count, err
}

func ListPhoto(tx *gorm.DB, take int, offset int) ([]models.Photo, error) {
	if take <= 0 || take > 100 {
		take = 20
	}

	var items []models.Photo
	if err := tx.Preload("Category").
		Order("created_at DESC").
		Offset(offset).Limit(take).
		Find(&items).Error; err != nil {
		return items, err
	}

	for idx := range items {
		items[idx].FileURL = AssetURL(storage.BucketPhotos, items[idx].FilePath)
	}

	return items, nil
}

func GetPhoto(id uint) (models.Photo, error) {
	var item models.Photo
	if err := database.C.Preload("Category").First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, &models.NotFoundError{Resource: "photo"}
		}
		return item, err
	}

	item.FileURL = AssetURL(storage.BucketPhotos, item.FilePath)

	return item, nil
}

// NewPhoto uploads the asset first; the record is only persisted once the
// blob is safely in the bucket.
func NewPhoto(ctx context.Context, item models.Photo, file *storage.Upload) (models.Photo, error) {
	if _, err := EnsureCategory(models.CategoryKindPhoto, item.CategoryID); err != nil {
		return item, err
	}

	if file != nil {
		path, err := storage.UploadFile(ctx, storage.BucketPhotos, photoAssetPrefix, *file)
		if err != nil {
			return item, err
		}
		item.FilePath = path
	}

	if err := database.C.Omit("Category").Create(&item).Error; err != nil {
		// the row never landed, so the fresh blob has no owner
		CleanupAsset(storage.BucketPhotos, item.FilePath)
		return item, err
	}

	return item, nil
}

// EditPhoto replaces or clears the asset atomically with the record patch:
// a failed upload leaves the stored path untouched, and the previous blob is
// only targeted for deletion after the patch has been committed.
func EditPhoto(ctx context.Context, item models.Photo, file *storage.Upload, clearAsset bool) (models.Photo, error) {
	if _, err := EnsureCategory(models.CategoryKindPhoto, item.CategoryID); err != nil {
		return item, err
	}

	var current models.Photo
	if err := database.C.Select("file_path").First(&current, "id = ?", item.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, &models.NotFoundError{Resource: "photo"}
		}
		return item, err
	}
	previous := current.FilePath

	switch {
	case file != nil:
		path, err := storage.UploadFile(ctx, storage.BucketPhotos, photoAssetPrefix, *file)
		if err != nil {
			return item, err
		}
		item.FilePath = path
	case clearAsset:
		item.FilePath = ""
	default:
		item.FilePath = previous
	}

	if err := database.C.Omit("Category").Save(&item).Error; err != nil {
		if file != nil {
			CleanupAsset(storage.BucketPhotos, item.FilePath)
		}
		return item, err
	}

	if len(previous) > 0 && previous != item.FilePath {
		CleanupAsset(storage.BucketPhotos, previous)
	}

	return item, nil
}

// DeletePhoto removes the row first so a failed blob delete can never
// resurrect a phantom record.
func DeletePhoto(item models.Photo) error {
	if err := database.C.Delete(&item).Error; err != nil {
		return err
	}

	CleanupAsset(storage.BucketPhotos, item.FilePath)

	return nil
}
