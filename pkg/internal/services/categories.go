package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	localCache "github.com/evelanca/backstage/pkg/internal/cache"
	"github.com/evelanca/backstage/pkg/internal/database"
	"github.com/evelanca/backstage/pkg/internal/models"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the name, turns every run of non-alphanumerics into a
// single hyphen and trims hyphens off both edges.
func Slugify(name string) string {
	return strings.Trim(nonSlugChars.ReplaceAllString(strings.ToLower(name), "-"), "-")
}

func categoryCacheKey(kind string, id uint) string {
	return fmt.Sprintf("category#%s#%d", kind, id)
}

func categoryMarshaler() *marshaler.Marshaler {
	return marshaler.New(cache.New[any](localCache.S))
}

func flushCategoryCache() {
	_ = categoryMarshaler().Invalidate(
		context.Background(),
		store.WithInvalidateTags([]string{"categories"}),
	)
}

func ListCategory(kind string) ([]models.Category, error) {
	var categories []models.Category
	err := database.C.Where("kind = ?", kind).Order("slug ASC").Find(&categories).Error

	return categories, err
}

// ListCategoryWithUsage is the admin listing; each category carries the
// number of records currently referencing it.
func ListCategoryWithUsage(kind string) ([]models.Category, error) {
	categories, err := ListCategory(kind)
	if err != nil {
		return categories, err
	}

	for idx, category := range categories {
		count, err := CountCategoryUsage(category)
		if err != nil {
			return categories, err
		}
		categories[idx].TotalRecords = count
	}

	return categories, nil
}

func GetCategory(kind string, id uint) (models.Category, error) {
	marshal := categoryMarshaler()
	ctx := context.Background()

	key := categoryCacheKey(kind, id)
	if hit, err := marshal.Get(ctx, key, new(models.Category)); err == nil {
		return *hit.(*models.Category), nil
	}

	var category models.Category
	if err := database.C.Where("kind = ? AND id = ?", kind, id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return category, &models.NotFoundError{Resource: kind + " category"}
		}
		return category, err
	}

	_ = marshal.Set(ctx, key, category, store.WithTags([]string{"categories"}))

	return category, nil
}

func GetCategoryBySlug(kind, slug string) (models.Category, error) {
	var category models.Category
	if err := database.C.Where("kind = ? AND slug = ?", kind, slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return category, &models.NotFoundError{Resource: kind + " category"}
		}
		return category, err
	}
	return category, nil
}

// EnsureCategory validates a record's category reference at write time; an
// unknown id of the expected kind is a validation failure, not a 404.
func EnsureCategory(kind string, id uint) (models.Category, error) {
	category, err := GetCategory(kind, id)
	if err != nil {
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			return category, &models.ValidationError{
				Field:  "category_id",
				Reason: fmt.Sprintf("unknown %s category with id %d", kind, id),
			}
		}
		return category, err
	}
	return category, nil
}

func NewCategory(kind, name, slug string) (models.Category, error) {
	if !lo.Contains(models.CategoryKinds, kind) {
		return models.Category{}, &models.ValidationError{Field: "kind", Reason: fmt.Sprintf("unknown kind %q", kind)}
	}

	if len(slug) == 0 {
		slug = Slugify(name)
	} else {
		slug = Slugify(slug)
	}
	if len(slug) == 0 {
		return models.Category{}, &models.ValidationError{Field: "name", Reason: "cannot derive a slug from the given name"}
	}

	var count int64
	if err := database.C.Model(&models.Category{}).
		Where("kind = ? AND slug = ?", kind, slug).
		Count(&count).Error; err != nil {
		return models.Category{}, err
	}
	if count > 0 {
		return models.Category{}, &models.ConflictError{Kind: kind, Slug: slug}
	}

	category := models.Category{
		Kind: kind,
		Slug: slug,
		Name: name,
	}

	if err := database.C.Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return category, &models.ConflictError{Kind: kind, Slug: slug}
		}
		return category, err
	}

	flushCategoryCache()

	return category, nil
}

// EditCategory patches name and slug. The slug is regenerated only when the
// name changes and the caller did not pin one explicitly, so a name-only
// edit never breaks existing links.
func EditCategory(kind string, id uint, name, slug *string) (models.Category, error) {
	var category models.Category
	if err := database.C.Where("kind = ? AND id = ?", kind, id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return category, &models.NotFoundError{Resource: kind + " category"}
		}
		return category, err
	}

	if name != nil && *name != category.Name {
		category.Name = *name
		if slug == nil {
			category.Slug = Slugify(*name)
		}
	}
	if slug != nil {
		category.Slug = Slugify(*slug)
	}
	if len(category.Slug) == 0 {
		return category, &models.ValidationError{Field: "slug", Reason: "cannot derive a slug from the given name"}
	}

	var count int64
	if err := database.C.Model(&models.Category{}).
		Where("kind = ? AND slug = ? AND id <> ?", kind, category.Slug, category.ID).
		Count(&count).Error; err != nil {
		return category, err
	}
	if count > 0 {
		return category, &models.ConflictError{Kind: kind, Slug: category.Slug}
	}

	if err := database.C.Save(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return category, &models.ConflictError{Kind: kind, Slug: category.Slug}
		}
		return category, err
	}

	flushCategoryCache()

	return category, nil
}

// DeleteCategory refuses to remove a category that content of its kind still
// references; the database constraint backs this guard up.
func DeleteCategory(kind string, id uint) error {
	var category models.Category
	if err := database.C.Where("kind = ? AND id = ?", kind, id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.NotFoundError{Resource: kind + " category"}
		}
		return err
	}

	count, err := CountCategoryUsage(category)
	if err != nil {
		return err
	}
	if count > 0 {
		return &models.ReferencedError{Kind: category.Kind, Count: count}
	}

	if err := database.C.Delete(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			count, _ = CountCategoryUsage(category)
			return &models.ReferencedError{Kind: category.Kind, Count: count}
		}
		return err
	}

	flushCategoryCache()

	return nil
}

func CountCategoryUsage(category models.Category) (int64, error) {
	var count int64
	var err error

	switch category.Kind {
	case models.CategoryKindVideo:
		err = database.C.Model(&models.Video{}).Where("category_id = ?", category.ID).Count(&count).Error
	case models.CategoryKindPhoto:
		err = database.C.Model(&models.Photo{}).Where("category_id = ?", category.ID).Count(&count).Error
	case models.CategoryKindPublication:
		err = database.C.Model(&models.Publication{}).Where("category_id = ?", category.ID).Count(&count).Error
	default:
		err = fmt.Errorf("unknown category kind %q", category.Kind)
	}

	return count, err
}
