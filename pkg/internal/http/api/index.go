package api

import "github.com/gofiber/fiber/v2"

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL).Name("API")
	{
		api.Get("/categories/:kind", listCategories)
		api.Get("/categories/:kind/:slug", getCategory)

		videos := api.Group("/videos").Name("Videos API")
		{
			videos.Get("/", listVideos)
			videos.Get("/featured", getFeaturedVideo)
			videos.Get("/:videoId", getVideo)
		}

		photos := api.Group("/photos").Name("Photos API")
		{
			photos.Get("/", listPhotos)
			photos.Get("/:photoId", getPhoto)
		}

		publications := api.Group("/publications").Name("Publications API")
		{
			publications.Get("/", listPublications)
			publications.Get("/featured", getFeaturedPublication)
			publications.Get("/:publicationId", getPublication)
		}
	}
}
