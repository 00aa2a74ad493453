package routes

import (
	"Backend-PlacementCell/src/controllers"
	"Backend-PlacementCell/src/middleware"
	"Backend-PlacementCell/src/models"

	"github.com/gofiber/fiber/v2"
)

func departmentRoutes(app *fiber.App) {
	group := app.Group("/departments")
	group.Use(middleware.AuthJWT)

	group.Get("/", controllers.GetDepartments)
	group.Get("/:id", controllers.GetDepartmentByID)
	group.Post("/", middleware.AuthorizeRoles(models.RoleTPO), controllers.CreateDepartment)
	group.Put("/:id", middleware.AuthorizeRoles(models.RoleTPO), controllers.UpdateDepartment)
	group.Delete("/:id", middleware.AuthorizeRoles(models.RoleTPO), controllers.DeleteDepartment)
}
