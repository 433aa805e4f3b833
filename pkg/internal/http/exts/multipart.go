package exts

import (
	"github.com/evelanca/backstage/pkg/internal/storage"
	"github.com/gofiber/fiber/v2"
)

// FormUpload pulls an optional file out of a multipart form. A missing
// field is not an error; the caller decides whether an asset is mandatory.
func FormUpload(c *fiber.Ctx, field string) (*storage.Upload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}

	src, err := header.Open()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return &storage.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get(fiber.HeaderContentType),
		Size:        header.Size,
		Content:     src,
	}, nil
}
