package routes

import (
	"Backend-PlacementCell/src/controllers"
	"Backend-PlacementCell/src/middleware"
	"Backend-PlacementCell/src/models"

	"github.com/gofiber/fiber/v2"
)

func jobRoleRoutes(app *fiber.App) {
	group := app.Group("/jobroles")
	group.Use(middleware.AuthJWT)

	// the eligible listing must come before the :id matcher
	group.Get("/eligible", middleware.StudentProtect, controllers.GetEligibleJobRoles)

	group.Get("/", controllers.GetJobRoles)
	group.Get("/:id", controllers.GetJobRoleByID)
	group.Post("/", middleware.AuthorizeRoles(models.RoleTPO), controllers.CreateJobRole)
	group.Put("/:id", middleware.AuthorizeRoles(models.RoleTPO), controllers.UpdateJobRole)
	group.Delete("/:id", middleware.AuthorizeRoles(models.RoleTPO), controllers.DeleteJobRole)
}
