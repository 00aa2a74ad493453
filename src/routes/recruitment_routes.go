package routes

import (
	"Backend-PlacementCell/src/controllers"
	"Backend-PlacementCell/src/middleware"
	"Backend-PlacementCell/src/models"

	"github.com/gofiber/fiber/v2"
)

func recruitmentRoutes(app *fiber.App) {
	group := app.Group("/recruitments")
	group.Use(middleware.AuthJWT)

	group.Post("/", middleware.AuthorizeRoles(models.RoleTPO, models.RoleHOD), controllers.CreateRecruitmentRound)
	group.Get("/job/:jobId", controllers.GetRecruitmentRoundsByJob)
	group.Post("/job/:jobId/publish", middleware.AuthorizeRoles(models.RoleTPO, models.RoleHOD), controllers.PublishFinalResults)
	group.Get("/:id", controllers.GetRecruitmentRound)
	group.Put("/:id/candidates", middleware.AuthorizeRoles(models.RoleTPO, models.RoleHOD), controllers.UpdateCandidateStatus)
}
