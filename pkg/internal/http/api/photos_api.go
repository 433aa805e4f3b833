package api

import (
	"strconv"

	"github.com/evelanca/backstage/pkg/internal/database"
	"github.com/evelanca/backstage/pkg/internal/http/exts"
	"github.com/evelanca/backstage/pkg/internal/queries"
	"github.com/evelanca/backstage/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func universalPhotoFilter(filter queries.FilterState, tx *gorm.DB) *gorm.DB {
	tx = services.FilterPhotoPublished(tx)
	tx = services.FilterPhotoWithFuzzySearch(tx, filter.Search)
	if filter.Category > 0 {
		tx = services.FilterPhotoWithCategory(tx, filter.Category)
	}

	return tx
}

func listPhotos(c *fiber.Ctx) error {
	filter := queries.ParseFilterState(c)

	tx := universalPhotoFilter(filter, database.C)

	count, err := services.CountPhoto(tx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items, err := services.ListPhoto(tx, filter.Take(), filter.Offset())
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return exts.Page(c, items, queries.Paginate(filter, count), filter.Seq)
}

func getPhoto(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("photoId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "photo id must be numeric")
	}

	item, err := services.GetPhoto(uint(id))
	if err != nil {
		return err
	}

	return exts.Data(c, item)
}
