package admin

import "github.com/gofiber/fiber/v2"

func MapControllers(app *fiber.App, baseURL string) {
	admin := app.Group(baseURL).Name("Admin API").Use(authMiddleware)
	{
		admin.Get("/categories/:kind", adminListCategories)
		admin.Post("/categories/:kind", adminCreateCategory)
		admin.Put("/categories/:kind/:categoryId", adminEditCategory)
		admin.Delete("/categories/:kind/:categoryId", adminDeleteCategory)

		videos := admin.Group("/videos").Name("Admin Videos API")
		{
			videos.Get("/", adminListVideos)
			videos.Post("/", adminCreateVideo)
			videos.Put("/:videoId", adminEditVideo)
			videos.Delete("/:videoId", adminDeleteVideo)
		}

		photos := admin.Group("/photos").Name("Admin Photos API")
		{
			photos.Get("/", adminListPhotos)
			photos.Post("/", adminCreatePhoto)
			photos.Put("/:photoId", adminEditPhoto)
			photos.Delete("/:photoId", adminDeletePhoto)
		}

		publications := admin.Group("/publications").Name("Admin Publications API")
		{
			publications.Get("/", adminListPublications)
			publications.Post("/", adminCreatePublication)
			publications.Put("/:publicationId", adminEditPublication)
			publications.Delete("/:publicationId", adminDeletePublication)
		}

		admin.Post("/maintenance/orphans", adminTriggerOrphanCleanup)
	}
}
