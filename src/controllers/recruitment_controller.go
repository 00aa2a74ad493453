package controllers

import (
	"errors"

	"Backend-PlacementCell/src/models"
	"Backend-PlacementCell/src/services/recruitments"
	"Backend-PlacementCell/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateRecruitmentRound godoc
// @Summary Create a recruitment round
// @Description Add a named evaluation event under a drive and notify its candidates
// @Tags recruitments
// @Accept json
// @Produce json
// @Param round body object true "jobId, name and initial candidates"
// @Success 201 {object} models.RecruitmentRound
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /recruitments [post]
func CreateRecruitmentRound(c *fiber.Ctx) error {
	var req struct {
		JobID      string `json:"jobId" validate:"required"`
		Name       string `json:"name" validate:"required"`
		Candidates []struct {
			StudentID string `json:"studentId"`
			Status    string `json:"status"`
			Remarks   string `json:"remarks"`
		} `json:"candidates"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	jobID, err := primitive.ObjectIDFromHex(req.JobID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid job role id")
	}

	round := models.RecruitmentRound{JobID: jobID, Name: req.Name}
	for _, cand := range req.Candidates {
		sid, err := primitive.ObjectIDFromHex(cand.StudentID)
		if err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid student id: "+cand.StudentID)
		}
		status := cand.Status
		if status == "" {
			status = models.StatusApplied
		}
		round.Candidates = append(round.Candidates, models.CandidateEntry{
			StudentID: sid,
			Status:    status,
			Remarks:   cand.Remarks,
		})
	}

	if err := recruitments.CreateRound(&round); err != nil {
		switch {
		case errors.Is(err, recruitments.ErrJobNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, recruitments.ErrAlreadyPublished):
			return utils.HandleError(c, fiber.StatusConflict, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(round)
}

// GetRecruitmentRound godoc
// @Summary Get one recruitment round
// @Tags recruitments
// @Produce json
// @Param id path string true "Round ID"
// @Success 200 {object} models.RecruitmentRound
// @Failure 404 {object} models.ErrorResponse
// @Router /recruitments/{id} [get]
func GetRecruitmentRound(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid round id")
	}
	round, err := recruitments.GetRound(id)
	if err != nil {
		if errors.Is(err, recruitments.ErrRoundNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(round)
}

// GetRecruitmentRoundsByJob godoc
// @Summary List rounds under a drive
// @Tags recruitments
// @Produce json
// @Param jobId path string true "Job role ID"
// @Success 200 {array} models.RecruitmentRound
// @Router /recruitments/job/{jobId} [get]
func GetRecruitmentRoundsByJob(c *fiber.Ctx) error {
	jobID, err := paramID(c, "jobId")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid job role id")
	}
	rounds, err := recruitments.GetRoundsByJob(jobID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(rounds)
}

// UpdateCandidateStatus godoc
// @Summary Set a candidate's status inside a round
// @Description Selected marks the student placed and mirrors into their application; published rounds are frozen
// @Tags recruitments
// @Accept json
// @Produce json
// @Param id path string true "Round ID"
// @Param update body object true "studentId, status and optional remarks"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /recruitments/{id}/candidates [put]
func UpdateCandidateStatus(c *fiber.Ctx) error {
	roundID, err := paramID(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid round id")
	}

	var req struct {
		StudentID string `json:"studentId" validate:"required"`
		Status    string `json:"status" validate:"required"`
		Remarks   string `json:"remarks"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	studentID, err := primitive.ObjectIDFromHex(req.StudentID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	if err := recruitments.UpdateCandidateStatus(roundID, studentID, req.Status, req.Remarks); err != nil {
		switch {
		case errors.Is(err, recruitments.ErrRoundNotFound),
			errors.Is(err, recruitments.ErrJobNotFound),
			errors.Is(err, recruitments.ErrStudentNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, recruitments.ErrInvalidStatus):
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, recruitments.ErrRoundPublished):
			return utils.HandleError(c, fiber.StatusConflict, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Candidate status updated", "status": req.Status})
}

// PublishFinalResults godoc
// @Summary Publish final results for a drive
// @Description Freezes every round under the job and emails each candidate their outcome
// @Tags recruitments
// @Produce json
// @Param jobId path string true "Job role ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /recruitments/job/{jobId}/publish [post]
func PublishFinalResults(c *fiber.Ctx) error {
	jobID, err := paramID(c, "jobId")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid job role id")
	}

	selected, rejected, err := recruitments.PublishFinalResults(jobID)
	if err != nil {
		switch {
		case errors.Is(err, recruitments.ErrNoRounds), errors.Is(err, recruitments.ErrJobNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, recruitments.ErrAlreadyPublished):
			return utils.HandleError(c, fiber.StatusConflict, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{
		"message":  "Final results published",
		"selected": selected,
		"rejected": rejected,
	})
}
