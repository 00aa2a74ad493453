package routes

import (
	"Backend-PlacementCell/src/controllers"
	"Backend-PlacementCell/src/middleware"
	"Backend-PlacementCell/src/models"

	"github.com/gofiber/fiber/v2"
)

func companyRoutes(app *fiber.App) {
	group := app.Group("/companies")
	group.Use(middleware.AuthJWT)

	group.Get("/", controllers.GetCompanies)
	group.Get("/:id", controllers.GetCompanyByID)
	group.Post("/", middleware.AuthorizeRoles(models.RoleTPO), controllers.CreateCompany)
	group.Put("/:id", middleware.AuthorizeRoles(models.RoleTPO), controllers.UpdateCompany)
	group.Delete("/:id", middleware.AuthorizeRoles(models.RoleTPO), controllers.DeleteCompany)
}
