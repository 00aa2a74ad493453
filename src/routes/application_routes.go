package routes

import (
	"Backend-PlacementCell/src/controllers"
	"Backend-PlacementCell/src/middleware"
	"Backend-PlacementCell/src/models"

	"github.com/gofiber/fiber/v2"
)

func applicationRoutes(app *fiber.App) {
	group := app.Group("/applications")
	group.Use(middleware.AuthJWT)

	group.Post("/", middleware.StudentProtect, controllers.ApplyToJob)
	group.Get("/me", middleware.StudentProtect, controllers.GetMyApplications)
	group.Get("/job/:jobId", middleware.AuthorizeRoles(models.RoleTPO, models.RoleHOD), controllers.GetApplicationsByJob)
	group.Get("/:id", controllers.GetApplicationByID)
	group.Put("/:id/status", middleware.AuthorizeRoles(models.RoleTPO, models.RoleHOD), controllers.UpdateApplicationStatus)
	group.Post("/:id/offer-letter", middleware.AuthorizeRoles(models.RoleTPO, models.RoleHOD), controllers.UploadOfferLetter)
}
