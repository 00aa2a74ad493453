package routes

import (
	"Backend-PlacementCell/src/controllers"
	"Backend-PlacementCell/src/middleware"
	"Backend-PlacementCell/src/models"

	"github.com/gofiber/fiber/v2"
)

func studentRoutes(app *fiber.App) {
	group := app.Group("/students")

	// registration is open; everything else needs a token
	group.Post("/", controllers.CreateStudent)

	group.Use(middleware.AuthJWT)
	group.Get("/", middleware.AuthorizeRoles(models.RoleTPO, models.RoleHOD), controllers.GetStudents)
	group.Get("/:id", controllers.GetStudentByID)
	group.Put("/:id", controllers.UpdateStudent)
	group.Put("/:id/approval", middleware.AuthorizeRoles(models.RoleTPO, models.RoleHOD), controllers.SetStudentApproval)
	group.Post("/:id/resume", controllers.UploadResume)
	group.Delete("/:id", middleware.AuthorizeRoles(models.RoleTPO), controllers.DeleteStudent)
}
