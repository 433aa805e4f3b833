package admin

import (
	"github.com/evelanca/backstage/pkg/internal/database"
	"github.com/evelanca/backstage/pkg/internal/http/exts"
	"github.com/evelanca/backstage/pkg/internal/models"
	"github.com/evelanca/backstage/pkg/internal/queries"
	"github.com/evelanca/backstage/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

func adminListPublications(c *fiber.Ctx) error {
	filter := queries.ParseFilterState(c)

	tx := services.FilterPublicationWithFuzzySearch(database.C, filter.Search)
	if filter.Category > 0 {
		tx = services.FilterPublicationWithCategory(tx, filter.Category)
	}
	if filter.Year > 0 {
		tx = services.FilterPublicationWithYear(tx, filter.Year)
	}

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

func adminCreatePublication(c *fiber.Ctx) error {
	var data struct {
		Title         string   `json:"title" form:"title" validate:"required"`
		Description   string   `json:"description" form:"description"`
		Publisher     string   `json:"publisher" form:"publisher"`
		TotalPages    int      `json:"total_pages" form:"total_pages"`
		PublishedYear int      `json:"published_year" form:"published_year"`
		BuyURL        string   `json:"buy_url" form:"buy_url" validate:"omitempty,url"`
		Tags          []string `json:"tags" form:"tags"`
		Featured      bool     `json:"featured" form:"featured"`
		Published     bool     `json:"published" form:"published"`
		CategoryID    uint     `json:"category_id" form:"category_id" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	cover, err := exts.FormUpload(c, "cover")
	if err != nil {
		return err
	}

	item, err := services.NewPublication(c.UserContext(), models.Publication{
		Title:         data.Title,
		Description:   data.Description,
		Publisher:     data.Publisher,
		TotalPages:    data.TotalPages,
		PublishedYear: data.PublishedYear,
		BuyURL:        data.BuyURL,
		Tags:          datatypes.NewJSONSlice(data.Tags),
		Featured:      data.Featured,
		Published:     data.Published,
		CategoryID:    data.CategoryID,
	}, cover)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    item,
	})
}

func adminEditPublication(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("publicationId", 0)

	item, err := services.GetPublication(uint(id))
	if err != nil {
		return err
	}

	var data struct {
		Title         *string   `json:"title" form:"title"`
		Description   *string   `json:"description" form:"description"`
		Publisher     *string   `json:"publisher" form:"publisher"`
		TotalPages    *int      `json:"total_pages" form:"total_pages"`
		PublishedYear *int      `json:"published_year" form:"published_year"`
		BuyURL        *string   `json:"buy_url" form:"buy_url" validate:"omitempty,url"`
		Tags          *[]string `json:"tags" form:"tags"`
		Featured      *bool     `json:"featured" form:"featured"`
		Published     *bool     `json:"published" form:"published"`
		CategoryID    *uint     `json:"category_id" form:"category_id"`
		RemoveCover   bool      `json:"remove_cover" form:"remove_cover"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if data.Title != nil {
		item.Title = *data.Title
	}
	if data.Description != nil {
		item.Description = *data.Description
	}
	if data.Publisher != nil {
		item.Publisher = *data.Publisher
	}
	if data.TotalPages != nil {
		item.TotalPages = *data.TotalPages
	}
	if data.PublishedYear != nil {
		item.PublishedYear = *data.PublishedYear
	}
	if data.BuyURL != nil {
		item.BuyURL = *data.BuyURL
	}
	if data.Tags != nil {
		item.Tags = datatypes.NewJSONSlice(*data.Tags)
	}
	if data.Featured != nil {
		item.Featured = *data.Featured
	}
	if data.Published != nil {
		item.Published = *data.Published
	}
	if data.CategoryID != nil {
		item.CategoryID = *data.CategoryID
		item.Category = models.Category{}
	}

	cover, err := exts.FormUpload(c, "cover")
	if err != nil {
		return err
	}

	item, err = services.EditPublication(c.UserContext(), item, cover, data.RemoveCover)
	if err != nil {
		return err
	}

	return exts.Data(c, item)
}

func adminDeletePublication(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("publicationId", 0)

	item, err := services.GetPublication(uint(id))
	if err != nil {
		return err
	}

	if err := services.DeletePublication(item); err != nil {
		return err
	}

	return exts.Data(c, nil)
}
