package routes

import (
	"Backend-PlacementCell/src/controllers"
	"Backend-PlacementCell/src/middleware"
	"Backend-PlacementCell/src/models"

	"github.com/gofiber/fiber/v2"
)

func tpoRoutes(app *fiber.App) {
	group := app.Group("/tpos")
	group.Use(middleware.AuthJWT)

	group.Post("/", middleware.AuthorizeRoles(models.RoleAdmin), controllers.CreateTPO)
	group.Get("/", middleware.AuthorizeRoles(models.RoleAdmin), controllers.GetTPOs)
	group.Get("/:id", controllers.GetTPOByID)
	group.Put("/:id", middleware.AuthorizeRoles(models.RoleTPO, models.RoleAdmin), controllers.UpdateTPO)
	group.Delete("/:id", middleware.AuthorizeRoles(models.RoleAdmin), controllers.DeleteTPO)
}
