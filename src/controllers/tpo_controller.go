package controllers

import (
	"errors"

	"Backend-PlacementCell/src/models"
	"Backend-PlacementCell/src/services/auth"
	"Backend-PlacementCell/src/services/tpos"
	"Backend-PlacementCell/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateTPO godoc
// @Summary Create a TPO account
// @Tags tpos
// @Accept json
// @Produce json
// @Param tpo body object true "TPO fields plus password"
// @Success 201 {object} models.TPO
// @Failure 409 {object} models.ErrorResponse
// @Router /tpos [post]
func CreateTPO(c *fiber.Ctx) error {
	var req struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Phone    string `json:"phone"`
		Password string `json:"password" validate:"required,min=6"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	tpo := models.TPO{Name: req.Name, Email: req.Email, Phone: req.Phone}
	if err := tpos.CreateTPO(&tpo, req.Password); err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			return utils.HandleError(c, fiber.StatusConflict, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(tpo)
}

func GetTPOs(c *fiber.Ctx) error {
	params := parsePagination(c)
	data, total, err := tpos.GetTPOs(params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(models.NewPaginatedResponse(data, total, params))
}

func GetTPOByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid tpo id")
	}
	tpo, err := tpos.GetTPOByID(id)
	if err != nil {
		if errors.Is(err, tpos.ErrTPONotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(tpo)
}

func UpdateTPO(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid tpo id")
	}
	var tpo models.TPO
	if err := c.BodyParser(&tpo); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := tpos.UpdateTPO(id, &tpo); err != nil {
		if errors.Is(err, tpos.ErrTPONotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"message": "TPO updated successfully"})
}

func DeleteTPO(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid tpo id")
	}
	if err := tpos.DeleteTPO(id); err != nil {
		if errors.Is(err, tpos.ErrTPONotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"message": "TPO deleted successfully"})
}
