package controllers

import (
	"strings"
	"time"

	"Backend-PlacementCell/src/services/auth"
	"Backend-PlacementCell/src/utils"

	"github.com/gofiber/fiber/v2"
)

// Login godoc
// @Summary Login
// @Description Authenticate with email/password and receive a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body object true "email and password"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if req.Email == "" || req.Password == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "Email and password are required")
	}

	user, name, err := auth.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, err.Error())
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role, user.RefID.Hex())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":    user.ID,
			"name":  name,
			"email": user.Email,
			"role":  user.Role,
			"refId": user.RefID,
		},
	})
}

// Logout godoc
// @Summary Logout
// @Description Blacklist the current token until it expires
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/logout [post]
func Logout(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenStr != "" {
		_ = utils.BlacklistToken(tokenStr, 24*time.Hour)
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// Me returns the identity claims of the current token.
func Me(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"userId": c.Locals("userId"),
		"email":  c.Locals("email"),
		"role":   c.Locals("role"),
		"refId":  c.Locals("refId"),
	})
}
