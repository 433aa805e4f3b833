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

func universalVideoFilter(filter queries.FilterState, tx *gorm.DB) *gorm.DB {
	tx = services.FilterVideoPublished(tx)
	tx = services.FilterVideoWithFuzzySearch(tx, filter.Search)
	if filter.Category > 0 {
		tx = services.FilterVideoWithCategory(tx, filter.Category)
	}

	return tx
}

func listVideos(c *fiber.Ctx) error {
	filter := queries.ParseFilterState(c)

	tx := universalVideoFilter(filter, database.C)

	count, err := services.CountVideo(tx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items, err := services.ListVideo(tx, filter.Take(), filter.Offset())
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return exts.Page(c, items, queries.Paginate(filter, count), filter.Seq)
}

func getFeaturedVideo(c *fiber.Ctx) error {
	filter := queries.ParseFilterState(c)

	item, err := services.GetFeaturedVideo(universalVideoFilter(filter, database.C))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return exts.Data(c, item)
}

func getVideo(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("videoId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "video id must be numeric")
	}

	item, err := services.GetVideo(uint(id))
	if err != nil {
		return err
	}

	return exts.Data(c, item)
}
