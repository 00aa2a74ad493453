package controllers

import (
	"errors"

	"Backend-PlacementCell/src/models"
	"Backend-PlacementCell/src/services/profiles"
	"Backend-PlacementCell/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetMyProfile godoc
// @Summary Get the current student's profile
// @Tags profiles
// @Produce json
// @Success 200 {object} models.StudentProfile
// @Failure 404 {object} models.ErrorResponse
// @Router /profiles/me [get]
func GetMyProfile(c *fiber.Ctx) error {
	studentID, err := primitive.ObjectIDFromHex(c.Locals("studentId").(string))
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid student identity")
	}
	profile, err := profiles.GetProfile(studentID)
	if err != nil {
		if errors.Is(err, profiles.ErrProfileNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(profile)
}

// UpsertMyProfile godoc
// @Summary Create or replace the current student's profile
// @Description Every submitted item comes back unverified
// @Tags profiles
// @Accept json
// @Produce json
// @Param profile body models.StudentProfile true "Profile sections"
// @Success 200 {object} map[string]interface{}
// @Router /profiles/me [put]
func UpsertMyProfile(c *fiber.Ctx) error {
	studentID, err := primitive.ObjectIDFromHex(c.Locals("studentId").(string))
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid student identity")
	}

	var profile models.StudentProfile
	if err := c.BodyParser(&profile); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}

	if err := profiles.UpsertProfile(studentID, &profile); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Profile saved"})
}

// GetStudentProfile godoc
// @Summary Get a student's profile (staff)
// @Tags profiles
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} models.StudentProfile
// @Failure 404 {object} models.ErrorResponse
// @Router /profiles/{studentId} [get]
func GetStudentProfile(c *fiber.Ctx) error {
	studentID, err := paramID(c, "studentId")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid student id")
	}
	profile, err := profiles.GetProfile(studentID)
	if err != nil {
		if errors.Is(err, profiles.ErrProfileNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(profile)
}

// VerifyProfileItem godoc
// @Summary Verify one profile item
// @Description Flips a single item's verified flag; there is no un-verify
// @Tags profiles
// @Produce json
// @Param studentId path string true "Student ID"
// @Param section path string true "Section (education/experience/certifications)"
// @Param itemId path string true "Item ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Router /profiles/{studentId}/{section}/{itemId}/verify [put]
func VerifyProfileItem(c *fiber.Ctx) error {
	studentID, err := paramID(c, "studentId")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid student id")
	}
	itemID, err := paramID(c, "itemId")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid item id")
	}

	if err := profiles.VerifyProfileItem(studentID, c.Params("section"), itemID); err != nil {
		switch {
		case errors.Is(err, profiles.ErrProfileNotFound), errors.Is(err, profiles.ErrItemNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, profiles.ErrUnknownSection):
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Item verified"})
}
