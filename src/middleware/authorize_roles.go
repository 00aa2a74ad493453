package middleware

import (
	"Backend-PlacementCell/src/models"

	"github.com/gofiber/fiber/v2"
)

// RoleAllowed is the transport-independent policy check: does the given
// role appear in the allow-list? Admin passes every gate.
func RoleAllowed(role string, allowed ...string) bool {
	if role == models.RoleAdmin {
		return true
	}
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// AuthorizeRoles gates a route group to the listed roles. Must run after
// AuthJWT so the role claim is in Locals.
func AuthorizeRoles(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if !RoleAllowed(role, allowed...) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied for role " + role})
		}
		return c.Next()
	}
}

// StudentProtect restricts a route to students and exposes their profile
// id as "studentId" so controllers never trust a client-supplied id.
func StudentProtect(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)
	if role != models.RoleStudent {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Students only"})
	}
	c.Locals("studentId", c.Locals("refId"))
	return c.Next()
}
