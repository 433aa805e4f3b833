package admin

import (
	"time"

	"github.com/evelanca/backstage/pkg/internal/database"
	"github.com/evelanca/backstage/pkg/internal/http/exts"
	"github.com/evelanca/backstage/pkg/internal/models"
	"github.com/evelanca/backstage/pkg/internal/queries"
	"github.com/evelanca/backstage/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

func adminListPhotos(c *fiber.Ctx) error {
	filter := queries.ParseFilterState(c)

	tx := services.FilterPhotoWithFuzzySearch(database.C, filter.Search)
	if filter.Category > 0 {
		tx = services.FilterPhotoWithCategory(tx, filter.Category)
	}

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

func adminCreatePhoto(c *fiber.Ctx) error {
	var data struct {
		Name       string     `json:"name" form:"name" validate:"required"`
		Event      string     `json:"event" form:"event"`
		Location   string     `json:"location" form:"location"`
		TakenAt    *time.Time `json:"taken_at" form:"taken_at"`
		Tags       []string   `json:"tags" form:"tags"`
		Published  bool       `json:"published" form:"published"`
		CategoryID uint       `json:"category_id" form:"category_id" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	file, err := exts.FormUpload(c, "file")
	if err != nil {
		return err
	}

	item, err := services.NewPhoto(c.UserContext(), models.Photo{
		Name:       data.Name,
		Event:      data.Event,
		Location:   data.Location,
		TakenAt:    data.TakenAt,
		Tags:       datatypes.NewJSONSlice(data.Tags),
		Published:  data.Published,
		CategoryID: data.CategoryID,
	}, file)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    item,
	})
}

func adminEditPhoto(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("photoId", 0)

	item, err := services.GetPhoto(uint(id))
	if err != nil {
		return err
	}

	var data struct {
		Name       *string    `json:"name" form:"name"`
		Event      *string    `json:"event" form:"event"`
		Location   *string    `json:"location" form:"location"`
		TakenAt    *time.Time `json:"taken_at" form:"taken_at"`
		Tags       *[]string  `json:"tags" form:"tags"`
		Published  *bool      `json:"published" form:"published"`
		CategoryID *uint      `json:"category_id" form:"category_id"`
		RemoveFile bool       `json:"remove_file" form:"remove_file"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if data.Name != nil {
		item.Name = *data.Name
	}
	if data.Event != nil {
		item.Event = *data.Event
	}
	if data.Location != nil {
		item.Location = *data.Location
	}
	if data.TakenAt != nil {
		item.TakenAt = data.TakenAt
	}
	if data.Tags != nil {
		item.Tags = datatypes.NewJSONSlice(*data.Tags)
	}
	if data.Published != nil {
		item.Published = *data.Published
	}
	if data.CategoryID != nil {
		item.CategoryID = *data.CategoryID
		item.Category = models.Category{}
	}

	file, err := exts.FormUpload(c, "file")
	if err != nil {
		return err
	}

	item, err = services.EditPhoto(c.UserContext(), item, file, data.RemoveFile)
	if err != nil {
		return err
	}

	return exts.Data(c, item)
}

func adminDeletePhoto(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("photoId", 0)

	item, err := services.GetPhoto(uint(id))
	if err != nil {
		return err
	}

	if err := services.DeletePhoto(item); err != nil {
		return err
	}

	return exts.Data(c, nil)
}
