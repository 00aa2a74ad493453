package controllers

import (
	"errors"
	"time"

	"Backend-PlacementCell/src/models"
	"Backend-PlacementCell/src/services/jobroles"
	"Backend-PlacementCell/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateJobRole godoc
// @Summary Create a drive
// @Description Post a job role under a company with eligibility criteria and stages
// @Tags jobroles
// @Accept json
// @Produce json
// @Param jobrole body object true "Drive fields"
// @Success 201 {object} models.JobRole
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /jobroles [post]
func CreateJobRole(c *fiber.Ctx) error {
	var req struct {
		Title               string    `json:"title" validate:"required"`
		Description         string    `json:"description"`
		CompanyID           string    `json:"companyId" validate:"required"`
		EligibleDepartments []string  `json:"eligibleDepartments"`
		MinCGPA             float64   `json:"minCgpa" validate:"gte=0,lte=10"`
		MaxBacklogs         int       `json:"maxBacklogs" validate:"gte=0"`
		CTC                 float64   `json:"ctc"`
		ApplicationDeadline time.Time `json:"applicationDeadline"`
		DriveDate           time.Time `json:"driveDate"`
		Stages              []string  `json:"stages"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	companyID, err := primitive.ObjectIDFromHex(req.CompanyID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid company id")
	}

	var deps []primitive.ObjectID
	for _, raw := range req.EligibleDepartments {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid department id: "+raw)
		}
		deps = append(deps, id)
	}

	job := models.JobRole{
		Title:               req.Title,
		Description:         req.Description,
		CompanyID:           companyID,
		EligibleDepartments: deps,
		MinCGPA:             req.MinCGPA,
		MaxBacklogs:         req.MaxBacklogs,
		CTC:                 req.CTC,
		ApplicationDeadline: req.ApplicationDeadline,
		DriveDate:           req.DriveDate,
		Stages:              req.Stages,
	}

	if err := jobroles.CreateJobRole(&job); err != nil {
		if errors.Is(err, jobroles.ErrCompanyNotFound) || errors.Is(err, jobroles.ErrDepartmentNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(job)
}

// GetJobRoles godoc
// @Summary List drives
// @Tags jobroles
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Search on title"
// @Success 200 {object} models.PaginatedResponse
// @Router /jobroles [get]
func GetJobRoles(c *fiber.Ctx) error {
	params := parsePagination(c)
	data, total, err := jobroles.GetJobRoles(params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(models.NewPaginatedResponse(data, total, params))
}

func GetJobRoleByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid job role id")
	}
	job, err := jobroles.GetJobRoleByID(id)
	if err != nil {
		if errors.Is(err, jobroles.ErrJobNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(job)
}

// GetEligibleJobRoles godoc
// @Summary List drives the current student can apply to
// @Description Approval gate, department list, CGPA floor, backlog ceiling and deadline all apply
// @Tags jobroles
// @Produce json
// @Success 200 {array} models.JobRole
// @Failure 403 {object} models.ErrorResponse
// @Router /jobroles/eligible [get]
func GetEligibleJobRoles(c *fiber.Ctx) error {
	studentID, err := primitive.ObjectIDFromHex(c.Locals("studentId").(string))
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid student identity")
	}
	jobs, err := jobroles.GetEligibleJobRoles(studentID)
	if err != nil {
		if errors.Is(err, jobroles.ErrStudentNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(jobs)
}

func UpdateJobRole(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid job role id")
	}
	var job models.JobRole
	if err := c.BodyParser(&job); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := jobroles.UpdateJobRole(id, &job); err != nil {
		if errors.Is(err, jobroles.ErrJobNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Job role updated successfully"})
}

func DeleteJobRole(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid job role id")
	}
	if err := jobroles.DeleteJobRole(id); err != nil {
		if errors.Is(err, jobroles.ErrJobNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Job role deleted successfully"})
}
