package jobroles

import (
	"testing"
	"time"

	"Backend-PlacementCell/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestIsEligible(t *testing.T) {
	cse := primitive.NewObjectID()
	mech := primitive.NewObjectID()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	baseStudent := func() *models.Student {
		return &models.Student{
			ID:           primitive.NewObjectID(),
			DepartmentID: cse,
			CGPA:         8.2,
			Backlogs:     0,
			Approval:     models.ApprovalApproved,
		}
	}
	baseJob := func() *models.JobRole {
		return &models.JobRole{
			ID:                  primitive.NewObjectID(),
			EligibleDepartments: []primitive.ObjectID{cse},
			MinCGPA:             7.0,
			MaxBacklogs:         1,
			ApplicationDeadline: now.Add(48 * time.Hour),
		}
	}

	t.Run("EligibleStudent", func(t *testing.T) {
		assert.True(t, IsEligible(baseStudent(), baseJob(), now))
	})

	t.Run("UnapprovedStudentSeesNothing", func(t *testing.T) {
		s := baseStudent()
		s.Approval = models.ApprovalPending
		assert.False(t, IsEligible(s, baseJob(), now))

		s.Approval = models.ApprovalRejected
		assert.False(t, IsEligible(s, baseJob(), now))
	})

	t.Run("DeadlinePassed", func(t *testing.T) {
		j := baseJob()
		j.ApplicationDeadline = now.Add(-time.Hour)
		assert.False(t, IsEligible(baseStudent(), j, now))
	})

	t.Run("CGPABelowMinimum", func(t *testing.T) {
		s := baseStudent()
		s.CGPA = 6.9
		assert.False(t, IsEligible(s, baseJob(), now))
	})

	t.Run("TooManyBacklogs", func(t *testing.T) {
		s := baseStudent()
		s.Backlogs = 2
		assert.False(t, IsEligible(s, baseJob(), now))
	})

	t.Run("WrongDepartment", func(t *testing.T) {
		s := baseStudent()
		s.DepartmentID = mech
		assert.False(t, IsEligible(s, baseJob(), now))
	})

	t.Run("EmptyDepartmentListMeansOpenToAll", func(t *testing.T) {
		s := baseStudent()
		s.DepartmentID = mech
		j := baseJob()
		j.EligibleDepartments = nil
		assert.True(t, IsEligible(s, j, now))
	})
}
