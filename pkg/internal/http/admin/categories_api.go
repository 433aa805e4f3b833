package admin

import (
	"github.com/evelanca/backstage/pkg/internal/http/exts"
	"github.com/evelanca/backstage/pkg/internal/models"
	"github.com/evelanca/backstage/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

func categoryKind(c *fiber.Ctx) (string, error) {
	kind := c.Params("kind")
	if !lo.Contains(models.CategoryKinds, kind) {
		return kind, fiber.NewError(fiber.StatusBadRequest, "unknown category kind")
	}
	return kind, nil
}

func adminListCategories(c *fiber.Ctx) error {
	kind, err := categoryKind(c)
	if err != nil {
		return err
	}

	categories, err := services.ListCategoryWithUsage(kind)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return exts.Data(c, categories)
}

func adminCreateCategory(c *fiber.Ctx) error {
	kind, err := categoryKind(c)
	if err != nil {
		return err
	}

	var data struct {
		Name string `json:"name" validate:"required"`
		Slug string `json:"slug"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	category, err := services.NewCategory(kind, data.Name, data.Slug)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    category,
	})
}

func adminEditCategory(c *fiber.Ctx) error {
	kind, err := categoryKind(c)
	if err != nil {
		return err
	}
	id, _ := c.ParamsInt("categoryId", 0)

	var data struct {
		Name *string `json:"name"`
		Slug *string `json:"slug"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	category, err := services.EditCategory(kind, uint(id), data.Name, data.Slug)
	if err != nil {
		return err
	}

	return exts.Data(c, category)
}

func adminDeleteCategory(c *fiber.Ctx) error {
	kind, err := categoryKind(c)
	if err != nil {
		return err
	}
	id, _ := c.ParamsInt("categoryId", 0)

	if err := services.DeleteCategory(kind, uint(id)); err != nil {
		return err
	}

	return exts.Data(c, nil)
}
