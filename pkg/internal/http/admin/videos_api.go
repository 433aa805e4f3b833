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

func adminListVideos(c *fiber.Ctx) error {
	filter := queries.ParseFilterState(c)

	tx := services.FilterVideoWithFuzzySearch(database.C, filter.Search)
	if filter.Category > 0 {
		tx = services.FilterVideoWithCategory(tx, filter.Category)
	}
	if len(filter.Status) > 0 {
		tx = services.FilterVideoWithStatus(tx, filter.Status)
	}

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

func adminCreateVideo(c *fiber.Ctx) error {
	var data struct {
		Title           string     `json:"title" validate:"required"`
		Description     string     `json:"description"`
		YoutubeID       string     `json:"youtube_id" validate:"required"`
		DurationSeconds int        `json:"duration_seconds"`
		Location        string     `json:"location"`
		RecordedAt      *time.Time `json:"recorded_at"`
		Tags            []string   `json:"tags"`
		Featured        bool       `json:"featured"`
		Published       bool       `json:"published"`
		CategoryID      uint       `json:"category_id" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.NewVideo(models.Video{
		Title:           data.Title,
		Description:     data.Description,
		YoutubeID:       data.YoutubeID,
		DurationSeconds: data.DurationSeconds,
		Location:        data.Location,
		RecordedAt:      data.RecordedAt,
		Tags:            datatypes.NewJSONSlice(data.Tags),
		Featured:        data.Featured,
		Published:       data.Published,
		CategoryID:      data.CategoryID,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    item,
	})
}

func adminEditVideo(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("videoId", 0)

	item, err := services.GetVideo(uint(id))
	if err != nil {
		return err
	}

	var data struct {
		Title           *string    `json:"title"`
		Description     *string    `json:"description"`
		YoutubeID       *string    `json:"youtube_id"`
		DurationSeconds *int       `json:"duration_seconds"`
		Location        *string    `json:"location"`
		RecordedAt      *time.Time `json:"recorded_at"`
		Tags            *[]string  `json:"tags"`
		Featured        *bool      `json:"featured"`
		Published       *bool      `json:"published"`
		CategoryID      *uint      `json:"category_id"`
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
	if data.YoutubeID != nil {
		item.YoutubeID = *data.YoutubeID
	}
	if data.DurationSeconds != nil {
		item.DurationSeconds = *data.DurationSeconds
	}
	if data.Location != nil {
		item.Location = *data.Location
	}
	if data.RecordedAt != nil {
		item.RecordedAt = data.RecordedAt
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

	item, err = services.EditVideo(item)
	if err != nil {
		return err
	}

	return exts.Data(c, item)
}

func adminDeleteVideo(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("videoId", 0)

	item, err := services.GetVideo(uint(id))
	if err != nil {
		return err
	}

	if err := services.DeleteVideo(item); err != nil {
		return err
	}

	return exts.Data(c, nil)
}
