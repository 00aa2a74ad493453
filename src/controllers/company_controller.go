package controllers

import (
	"errors"

	"Backend-PlacementCell/src/models"
	"Backend-PlacementCell/src/services/companies"
	"Backend-PlacementCell/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateCompany godoc
// @Summary Create a company
// @Tags companies
// @Accept json
// @Produce json
// @Param company body models.Company true "Company"
// @Success 201 {object} models.Company
// @Failure 409 {object} models.ErrorResponse
// @Router /companies [post]
func CreateCompany(c *fiber.Ctx) error {
	var company models.Company
	if err := c.BodyParser(&company); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if company.Name == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "Company name is required")
	}
	if err := companies.CreateCompany(&company); err != nil {
		if errors.Is(err, companies.ErrNameTaken) {
			return utils.HandleError(c, fiber.StatusConflict, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(company)
}

// GetCompanies godoc
// @Summary List companies
// @Tags companies
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Search on name"
// @Success 200 {object} models.PaginatedResponse
// @Router /companies [get]
func GetCompanies(c *fiber.Ctx) error {
	params := parsePagination(c)
	data, total, err := companies.GetCompanies(params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(models.NewPaginatedResponse(data, total, params))
}

func GetCompanyByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid company id")
	}
	company, err := companies.GetCompanyByID(id)
	if err != nil {
		if errors.Is(err, companies.ErrCompanyNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(company)
}

func UpdateCompany(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid company id")
	}
	var company models.Company
	if err := c.BodyParser(&company); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := companies.UpdateCompany(id, &company); err != nil {
		if errors.Is(err, companies.ErrCompanyNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		if errors.Is(err, companies.ErrNameTaken) {
			return utils.HandleError(c, fiber.StatusConflict, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Company updated successfully"})
}

func DeleteCompany(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid company id")
	}
	if err := companies.DeleteCompany(id); err != nil {
		if errors.Is(err, companies.ErrCompanyNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Company deleted successfully"})
}
