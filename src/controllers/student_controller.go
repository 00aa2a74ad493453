package controllers

import (
	"errors"
	"strconv"
	"strings"

	"Backend-PlacementCell/src/models"
	"Backend-PlacementCell/src/services/auth"
	"Backend-PlacementCell/src/services/students"
	"Backend-PlacementCell/src/services/uploads"
	"Backend-PlacementCell/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// paramID parses the named route parameter as a Mongo ObjectID.
func paramID(c *fiber.Ctx, name string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.Params(name))
}

// parsePagination reads paging query params with defaults.
func parsePagination(c *fiber.Ctx) models.PaginationParams {
	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.Search = c.Query("search", params.Search)
	params.SortBy = c.Query("sortBy", params.SortBy)
	params.Order = c.Query("order", params.Order)
	params.Normalize()
	return params
}

func cleanList(arr []string) []string {
	var result []string
	for _, v := range arr {
		v = strings.TrimSpace(v)
		if v != "" {
			result = append(result, v)
		}
	}
	return result
}

// createStudentStatus maps registration failures to HTTP statuses. Both
// natural keys (student code and login email) collide as 409.
func createStudentStatus(err error) int {
	if errors.Is(err, students.ErrCodeTaken) || errors.Is(err, auth.ErrEmailTaken) {
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}

// CreateStudent godoc
// @Summary Register a student
// @Description Create a student profile and its login; the account starts unapproved
// @Tags students
// @Accept json
// @Produce json
// @Param student body object true "Student fields plus password"
// @Success 201 {object} models.Student
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /students [post]
func CreateStudent(c *fiber.Ctx) error {
	var req struct {
		Code         string  `json:"code" validate:"required"`
		Name         string  `json:"name" validate:"required"`
		Email        string  `json:"email" validate:"required,email"`
		Phone        string  `json:"phone"`
		DepartmentID string  `json:"departmentId" validate:"required"`
		CGPA         float64 `json:"cgpa" validate:"gte=0,lte=10"`
		Backlogs     int     `json:"backlogs" validate:"gte=0"`
		Password     string  `json:"password" validate:"required,min=6"`
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

	student := models.Student{
		Code:         req.Code,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		DepartmentID: depID,
		CGPA:         req.CGPA,
		Backlogs:     req.Backlogs,
	}

	if err := students.CreateStudent(&student, req.Password); err != nil {
		return utils.HandleError(c, createStudentStatus(err), err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(student)
}

// GetStudents godoc
// @Summary List students
// @Description List students with department/approval/placement filters
// @Tags students
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Search on name or code"
// @Param department query string false "Department ids (comma separated)"
// @Param approval query string false "Approval state (pending/approved/rejected)"
// @Param placed query bool false "Placement flag"
// @Success 200 {object} models.PaginatedResponse
// @Router /students [get]
func GetStudents(c *fiber.Ctx) error {
	params := parsePagination(c)

	var departmentIDs []primitive.ObjectID
	for _, raw := range cleanList(strings.Split(c.Query("department"), ",")) {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid department id: "+raw)
		}
		departmentIDs = append(departmentIDs, id)
	}

	var placed *bool
	if raw := c.Query("placed"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid placed flag")
		}
		placed = &v
	}

	data, total, totalPages, err := students.GetStudentsWithFilter(params, departmentIDs, c.Query("approval"), placed)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := models.NewPaginatedResponse(data, total, params)
	resp.TotalPages = totalPages
	return c.JSON(resp)
}

// GetStudentByID godoc
// @Summary Get one student
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} models.Student
// @Failure 404 {object} models.ErrorResponse
// @Router /students/{id} [get]
func GetStudentByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	student, err := students.GetStudentByID(id)
	if err != nil {
		if errors.Is(err, students.ErrStudentNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(student)
}

// UpdateStudent godoc
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param student body models.Student true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Router /students/{id} [put]
func UpdateStudent(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}

	if err := students.UpdateStudent(id, &student); err != nil {
		if errors.Is(err, students.ErrStudentNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Student updated successfully"})
}

// SetStudentApproval godoc
// @Summary Approve or reject a student
// @Description Flip the verification gate; the student is emailed either way
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param decision body object true "approved flag and optional reason"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Router /students/{id}/approval [put]
func SetStudentApproval(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var req struct {
		Approved bool   `json:"approved"`
		Reason   string `json:"reason"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}

	if err := students.SetApproval(id, req.Approved, req.Reason); err != nil {
		if errors.Is(err, students.ErrStudentNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	state := models.ApprovalApproved
	if !req.Approved {
		state = models.ApprovalRejected
	}
	return c.JSON(fiber.Map{"message": "Approval updated", "approval": state})
}

// UploadResume godoc
// @Summary Upload a resume
// @Description Store the file on disk and save its URL on the student
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Student ID"
// @Param file formData file true "Resume file (PDF)"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Router /students/{id}/resume [post]
func UploadResume(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Resume file is required")
	}

	stored := uploads.StoredName(file.Filename)
	if err := c.SaveFile(file, uploads.StoredPath(stored)); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to save file")
	}

	url := uploads.URLFor(stored)
	if err := students.SetResumeURL(id, url); err != nil {
		if errors.Is(err, students.ErrStudentNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Resume uploaded", "resumeUrl": url})
}

// DeleteStudent godoc
// @Summary Delete a student
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Router /students/{id} [delete]
func DeleteStudent(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	if err := students.DeleteStudent(id); err != nil {
		if errors.Is(err, students.ErrStudentNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Student deleted successfully"})
}
