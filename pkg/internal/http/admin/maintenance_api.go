package admin

import (
	"github.com/evelanca/backstage/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func adminTriggerOrphanCleanup(c *fiber.Ctx) error {
	go services.DoAutoOrphanCleanup()

	return c.SendStatus(fiber.StatusOK)
}
