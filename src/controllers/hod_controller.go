package controllers

import (
	"errors"

	"Backend-PlacementCell/src/models"
	"Backend-PlacementCell/src/services/auth"
	"Backend-PlacementCell/src/services/hods"
	"Backend-PlacementCell/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateHOD godoc
// @Summary Create a HOD account
// @Tags hods
// @Accept json
// @Produce json
// @Param hod body object true "HOD fields plus password"
// @Success 201 {object} models.HOD
// @Failure 409 {object} models.ErrorResponse
// @Router /hods [post]
func CreateHOD(c *fiber.Ctx) error {
	var req struct {
		Name         string `json:"name" validate:"required"`
		Email        string `json:"email" validate:"required,email"`
		Phone        string `json:"phone"`
		DepartmentID string `json:"departmentId" validate:"required"`
		Password     string `json:"password" validate:"required,min=6"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	depID, err := primitive.ObjectIDFromHex(req.DepartmentID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid department id")
	}

	hod := models.HOD{Name: req.Name, Email: req.Email, Phone: req.Phone, DepartmentID: depID}
	if err := hods.CreateHOD(&hod, req.Password); err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			return utils.HandleError(c, fiber.StatusConflict, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(hod)
}

func GetHODs(c *fiber.Ctx) error {
	params := parsePagination(c)
	data, total, err := hods.GetHODs(params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(models.NewPaginatedResponse(data, total, params))
}

func GetHODByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid hod id")
	}
	hod, err := hods.GetHODByID(id)
	if err != nil {
		if errors.Is(err, hods.ErrHODNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(hod)
}

func UpdateHOD(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid hod id")
	}
	var hod models.HOD
	if err := c.BodyParser(&hod); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := hods.UpdateHOD(id, &hod); err != nil {
		if errors.Is(err, hods.ErrHODNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"message": "HOD updated successfully"})
}

func DeleteHOD(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid hod id")
	}
	if err := hods.DeleteHOD(id); err != nil {
		if errors.Is(err, hods.ErrHODNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"message": "HOD deleted successfully"})
}
