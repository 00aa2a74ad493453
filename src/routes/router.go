package routes

import (
	"github.com/gofiber/fiber/v2"
)

// InitRoutes mounts every module's routes on the app.
func InitRoutes(app *fiber.App) {
	authRoutes(app)
	studentRoutes(app)
	hodRoutes(app)
	tpoRoutes(app)
	departmentRoutes(app)
	companyRoutes(app)
	jobRoleRoutes(app)
	applicationRoutes(app)
	recruitmentRoutes(app)
	profileRoutes(app)
	reportRoutes(app)
	aiRoutes(app)

	// liveness check
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
