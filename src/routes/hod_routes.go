package routes

import (
	"Backend-PlacementCell/src/controllers"
	"Backend-PlacementCell/src/middleware"
	"Backend-PlacementCell/src/models"

	"github.com/gofiber/fiber/v2"
)

func hodRoutes(app *fiber.App) {
	group := app.Group("/hods")
	group.Use(middleware.AuthJWT)

	group.Post("/", middleware.AuthorizeRoles(models.RoleAdmin), controllers.CreateHOD)
	group.Get("/", middleware.AuthorizeRoles(models.RoleTPO), controllers.GetHODs)
	group.Get("/:id", controllers.GetHODByID)
	group.Put("/:id", middleware.AuthorizeRoles(models.RoleHOD, models.RoleAdmin), controllers.UpdateHOD)
	group.Delete("/:id", middleware.AuthorizeRoles(models.RoleAdmin), controllers.DeleteHOD)
}
