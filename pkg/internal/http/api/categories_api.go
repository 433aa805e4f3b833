package api

import (
	"github.com/evelanca/backstage/pkg/internal/http/exts"
	"github.com/evelanca/backstage/pkg/internal/models"
	"github.com/evelanca/backstage/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

func listCategories(c *fiber.Ctx) error {
	kind := c.Params("kind")
	if !lo.Contains(models.CategoryKinds, kind) {
		return fiber.NewError(fiber.StatusBadRequest, "unknown category kind")
	}

	categories, err := services.ListCategory(kind)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return exts.Data(c, categories)
}

func getCategory(c *fiber.Ctx) error {
	kind := c.Params("kind")
	if !lo.Contains(models.CategoryKinds, kind) {
		return fiber.NewError(fiber.StatusBadRequest, "unknown category kind")
	}

	category, err := services.GetCategoryBySlug(kind, c.Params("slug"))
	if err != nil {
		return err
	}

	return exts.Data(c, category)
}
