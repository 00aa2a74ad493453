package controllers

import (
	"errors"
	"testing"

	"Backend-PlacementCell/src/services/auth"
	"Backend-PlacementCell/src/services/students"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestCreateStudentStatus(t *testing.T) {
	t.Run("DuplicateCodeConflicts", func(t *testing.T) {
		assert.Equal(t, fiber.StatusConflict, createStudentStatus(students.ErrCodeTaken))
	})

	t.Run("DuplicateEmailConflicts", func(t *testing.T) {
		// the login row collides before the profile insert; still a 409
		assert.Equal(t, fiber.StatusConflict, createStudentStatus(auth.ErrEmailTaken))
	})

	t.Run("WrappedErrorsStillMatch", func(t *testing.T) {
		wrapped := errors.Join(errors.New("create login"), auth.ErrEmailTaken)
		assert.Equal(t, fiber.StatusConflict, createStudentStatus(wrapped))
	})

	t.Run("OtherFailuresAre500", func(t *testing.T) {
		assert.Equal(t, fiber.StatusInternalServerError, createStudentStatus(errors.New("connection reset")))
	})
}
