package routes

import (
	"Backend-PlacementCell/src/controllers"
	"Backend-PlacementCell/src/middleware"
	"Backend-PlacementCell/src/models"

	"github.com/gofiber/fiber/v2"
)

func profileRoutes(app *fiber.App) {
	group := app.Group("/profiles")
	group.Use(middleware.AuthJWT)

	group.Get("/me", middleware.StudentProtect, controllers.GetMyProfile)
	group.Put("/me", middleware.StudentProtect, controllers.UpsertMyProfile)
	group.Get("/:studentId", middleware.AuthorizeRoles(models.RoleTPO, models.RoleHOD), controllers.GetStudentProfile)
	group.Put("/:studentId/:section/:itemId/verify", middleware.AuthorizeRoles(models.RoleTPO, models.RoleHOD), controllers.VerifyProfileItem)
}
