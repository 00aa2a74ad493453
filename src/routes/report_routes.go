package routes

import (
	"Backend-PlacementCell/src/controllers"
	"Backend-PlacementCell/src/middleware"
	"Backend-PlacementCell/src/models"

	"github.com/gofiber/fiber/v2"
)

func reportRoutes(app *fiber.App) {
	group := app.Group("/reports")
	group.Use(middleware.AuthJWT)
	group.Use(middleware.AuthorizeRoles(models.RoleTPO, models.RoleHOD))

	group.Get("/summary", controllers.GetPlacementSummary)
	group.Get("/offers/company/excel", controllers.DownloadCompanyOffersExcel)
	group.Get("/offers/department/excel", controllers.DownloadDepartmentOffersExcel)
	group.Get("/offers/pdf", controllers.DownloadOffersPDF)
}
