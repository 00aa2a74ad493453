package applications

import (
	"testing"
	"time"

	"Backend-PlacementCell/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCanApply(t *testing.T) {
	dept := primitive.NewObjectID()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	student := &models.Student{
		ID:           primitive.NewObjectID(),
		DepartmentID: dept,
		CGPA:         8.0,
		Backlogs:     0,
		Approval:     models.ApprovalApproved,
	}
	job := &models.JobRole{
		ID:                  primitive.NewObjectID(),
		EligibleDepartments: []primitive.ObjectID{dept},
		MinCGPA:             6.5,
		MaxBacklogs:         0,
		ApplicationDeadline: now.Add(24 * time.Hour),
	}

	t.Run("FirstApplicationAccepted", func(t *testing.T) {
		assert.NoError(t, CanApply(student, job, false, now))
	})

	t.Run("DuplicateApplicationRejected", func(t *testing.T) {
		// Open question in the workflow design: duplicates could be merged,
		// allowed, or rejected. This codebase rejects them with a conflict.
		err := CanApply(student, job, true, now)
		assert.ErrorIs(t, err, ErrDuplicateApply)
	})

	t.Run("IneligibleStudentRejected", func(t *testing.T) {
		poor := *student
		poor.CGPA = 5.0
		err := CanApply(&poor, job, false, now)
		assert.ErrorIs(t, err, ErrNotEligible)
	})

	t.Run("DuplicateCheckedBeforeEligibility", func(t *testing.T) {
		poor := *student
		poor.CGPA = 5.0
		err := CanApply(&poor, job, true, now)
		assert.ErrorIs(t, err, ErrDuplicateApply)
	})
}

func TestApplicationStatusHistory(t *testing.T) {
	app := &models.Application{
		ID:        primitive.NewObjectID(),
		StudentID: primitive.NewObjectID(),
		JobID:     primitive.NewObjectID(),
		CreatedAt: time.Now(),
	}
	app.AppendStatus(models.StatusApplied, "", app.CreatedAt)

	t.Run("InitialStateIsApplied", func(t *testing.T) {
		assert.Equal(t, models.StatusApplied, app.Status)
		assert.Len(t, app.StatusUpdates, 1)
	})

	t.Run("StatusTracksHistoryTail", func(t *testing.T) {
		app.AppendStatus("Screening", "shortlisted", time.Now())
		app.AppendStatus("Interview", "", time.Now())

		assert.Equal(t, "Interview", app.Status)
		assert.Len(t, app.StatusUpdates, 3)
		assert.Equal(t, app.Status, app.StatusUpdates[len(app.StatusUpdates)-1].Status)
	})

	t.Run("HistoryPreservesOrderAndNotes", func(t *testing.T) {
		assert.Equal(t, models.StatusApplied, app.StatusUpdates[0].Status)
		assert.Equal(t, "shortlisted", app.StatusUpdates[1].Note)
	})
}
