package routes

import (
	"Backend-PlacementCell/src/controllers"
	"Backend-PlacementCell/src/middleware"
	"Backend-PlacementCell/src/models"

	"github.com/gofiber/fiber/v2"
)

func aiRoutes(app *fiber.App) {
	group := app.Group("/ai")
	group.Use(middleware.AuthJWT)

	group.Post("/parse-resume", controllers.ParseResumeAI)
	group.Post("/format-resume", controllers.FormatResumeAI)
	group.Post("/hirability", middleware.AuthorizeRoles(models.RoleTPO, models.RoleHOD), controllers.ScoreHirabilityAI)
	group.Post("/email-template", middleware.AuthorizeRoles(models.RoleTPO), controllers.GenerateEmailTemplateAI)
}
