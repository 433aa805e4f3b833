package exts

import (
	"github.com/evelanca/backstage/pkg/internal/queries"
	"github.com/gofiber/fiber/v2"
)

// Every response carries the same envelope so the admin frontend can
// distinguish "nothing happened" rejections from data without sniffing
// status codes.

func Data(c *fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func Page(c *fiber.Ctx, items any, pagination queries.Pagination, seq uint64) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"items":      items,
			"pagination": pagination,
			"seq":        seq,
		},
	})
}
