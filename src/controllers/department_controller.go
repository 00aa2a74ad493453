package controllers

import (
	"errors"

	"Backend-PlacementCell/src/models"
	"Backend-PlacementCell/src/services/departments"
	"Backend-PlacementCell/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateDepartment godoc
// @Summary Create a department
// @Tags departments
// @Accept json
// @Produce json
// @Param department body models.Department true "Department"
// @Success 201 {object} models.Department
// @Failure 409 {object} models.ErrorResponse
// @Router /departments [post]
func CreateDepartment(c *fiber.Ctx) error {
	var dep models.Department
	if err := c.BodyParser(&dep); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if dep.Name == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "Department name is required")
	}
	if err := departments.CreateDepartment(&dep); err != nil {
		if errors.Is(err, departments.ErrNameTaken) {
			return utils.HandleError(c, fiber.StatusConflict, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(dep)
}

func GetDepartments(c *fiber.Ctx) error {
	deps, err := departments.GetDepartments()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(deps)
}

func GetDepartmentByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid department id")
	}
	dep, err := departments.GetDepartmentByID(id)
	if err != nil {
		if errors.Is(err, departments.ErrDepartmentNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(dep)
}

func UpdateDepartment(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid department id")
	}
	var dep models.Department
	if err := c.BodyParser(&dep); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := departments.UpdateDepartment(id, &dep); err != nil {
		if errors.Is(err, departments.ErrDepartmentNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		if errors.Is(err, departments.ErrNameTaken) {
			return utils.HandleError(c, fiber.StatusConflict, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Department updated successfully"})
}

func DeleteDepartment(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid department id")
	}
	if err := departments.DeleteDepartment(id); err != nil {
		if errors.Is(err, departments.ErrDepartmentNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Department deleted successfully"})
}
