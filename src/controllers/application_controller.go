package controllers

import (
	"errors"

	"Backend-PlacementCell/src/services/applications"
	"Backend-PlacementCell/src/services/uploads"
	"Backend-PlacementCell/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApplyToJob godoc
// @Summary Apply to a drive
// @Description Submit an application for the current student; one per drive
// @Tags applications
// @Accept multipart/form-data
// @Produce json
// @Param jobId formData string true "Job role ID"
// @Param coverLetter formData string false "Cover letter"
// @Param resume formData file false "Resume override (falls back to the profile resume)"
// @Success 201 {object} models.Application
// @Failure 403 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /applications [post]
func ApplyToJob(c *fiber.Ctx) error {
	studentID, err := primitive.ObjectIDFromHex(c.Locals("studentId").(string))
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid student identity")
	}

	jobID, err := primitive.ObjectIDFromHex(c.FormValue("jobId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid job role id")
	}

	resumeURL := ""
	if file, err := c.FormFile("resume"); err == nil {
		stored := uploads.StoredName(file.Filename)
		if err := c.SaveFile(file, uploads.StoredPath(stored)); err != nil {
			return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to save resume")
		}
		resumeURL = uploads.URLFor(stored)
	}

	app, err := applications.Apply(studentID, jobID, resumeURL, c.FormValue("coverLetter"))
	if err != nil {
		switch {
		case errors.Is(err, applications.ErrDuplicateApply):
			return utils.HandleError(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, applications.ErrNotEligible):
			return utils.HandleError(c, fiber.StatusForbidden, err.Error())
		case errors.Is(err, applications.ErrStudentNotFound), errors.Is(err, applications.ErrJobNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(app)
}

// GetMyApplications godoc
// @Summary List the current student's applications
// @Tags applications
// @Produce json
// @Success 200 {array} models.Application
// @Router /applications/me [get]
func GetMyApplications(c *fiber.Ctx) error {
	studentID, err := primitive.ObjectIDFromHex(c.Locals("studentId").(string))
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid student identity")
	}
	apps, err := applications.GetApplicationsByStudent(studentID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(apps)
}

// GetApplicationsByJob godoc
// @Summary List applications for a drive
// @Tags applications
// @Produce json
// @Param jobId path string true "Job role ID"
// @Success 200 {array} models.Application
// @Router /applications/job/{jobId} [get]
func GetApplicationsByJob(c *fiber.Ctx) error {
	jobID, err := paramID(c, "jobId")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid job role id")
	}
	apps, err := applications.GetApplicationsByJob(jobID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(apps)
}

func GetApplicationByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid application id")
	}
	app, err := applications.GetApplicationByID(id)
	if err != nil {
		if errors.Is(err, applications.ErrApplicationNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(app)
}

// UploadOfferLetter godoc
// @Summary Upload an offer letter
// @Description Store the offer letter on disk and save its URL on the application
// @Tags applications
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Application ID"
// @Param file formData file true "Offer letter (PDF)"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Router /applications/{id}/offer-letter [post]
func UploadOfferLetter(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid application id")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Offer letter file is required")
	}

	stored := uploads.StoredName(file.Filename)
	if err := c.SaveFile(file, uploads.StoredPath(stored)); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to save file")
	}

	url := uploads.URLFor(stored)
	if err := applications.SetOfferLetterURL(id, url); err != nil {
		if errors.Is(err, applications.ErrApplicationNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Offer letter uploaded", "offerLetterUrl": url})
}

// UpdateApplicationStatus godoc
// @Summary Move an application to another stage
// @Description Status must belong to the drive's stage list or be Selected/Rejected; the student is emailed
// @Tags applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param update body object true "status and optional note"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /applications/{id}/status [put]
func UpdateApplicationStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid application id")
	}

	var req struct {
		Status string `json:"status" validate:"required"`
		Note   string `json:"note"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := applications.UpdateStatus(id, req.Status, req.Note); err != nil {
		switch {
		case errors.Is(err, applications.ErrApplicationNotFound), errors.Is(err, applications.ErrJobNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, applications.ErrInvalidStatus):
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Application status updated", "status": req.Status})
}
