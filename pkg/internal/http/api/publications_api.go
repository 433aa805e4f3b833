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

func universalPublicationFilter(filter queries.FilterState, tx *gorm.DB) *gorm.DB {
	tx = services.FilterPublicationPublished(tx)
	tx = services.FilterPublicationWithFuzzySearch(tx, filter.Search)
	if filter.Category > 0 {
		tx = services.FilterPublicationWithCategory(tx, filter.Category)
	}
	if filter.Year > 0 {
		tx = services.FilterPublicationWithYear(tx, filter.Year)
	}

	return tx
}

func listPublications(c *fiber.Ctx) error {
	filter := queries.ParseFilterState(c)

	tx := universalPublicationFilter(filter, database.C)

	count, err := services.CountPublication(tx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items, err := services.ListPublication(tx, filter.Take(), filter.Offset())
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return exts.Page(c, items, queries.Paginate(filter, count), filter.Seq)
}

func getFeaturedPublication(c *fiber.Ctx) error {
	filter := queries.ParseFilterState(c)

	item, err := services.GetFeaturedPublication(universalPublicationFilter(filter, database.C))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return exts.Data(c, item)
}

func getPublication(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("publicationId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "publication id must be numeric")
	}

	item, err := services.GetPublication(uint(id))
	if err != nil {
		return err
	}

	return exts.Data(c, item)
}
