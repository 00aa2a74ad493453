package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Terminal candidate statuses. They sit outside a drive's ordered stage
// list: Selected marks the student placed, Rejected absorbs everything else.
const (
	StatusApplied  = "Applied"
	StatusSelected = "Selected"
	StatusRejected = "Rejected"
)

// DefaultStages is used when a drive is created without an explicit
// stage list.
var DefaultStages = []string{StatusApplied, "Screening", "Interview", "Offered"}

// JobRole is a posted opportunity (a "drive") tied to one company.
// The stage list is assumed immutable once candidates exist.
type JobRole struct {
	ID                  primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title               string               `bson:"title" json:"title"`
	Description         string               `bson:"description" json:"description"`
	CompanyID           primitive.ObjectID   `bson:"companyId" json:"companyId"`
	EligibleDepartments []primitive.ObjectID `bson:"eligibleDepartments" json:"eligibleDepartments"`
	MinCGPA             float64              `bson:"minCgpa" json:"minCgpa"`
	MaxBacklogs         int                  `bson:"maxBacklogs" json:"maxBacklogs"`
	CTC                 float64              `bson:"ctc" json:"ctc"` // annual package, LPA
	ApplicationDeadline time.Time            `bson:"applicationDeadline" json:"applicationDeadline"`
	DriveDate           time.Time            `bson:"driveDate" json:"driveDate"`
	Stages              []string             `bson:"stages" json:"stages"`
}

// HasStage reports whether status is one of the drive's stages or a
// terminal status. This is the closed set updateCandidateStatus accepts.
func (j *JobRole) HasStage(status string) bool {
	if status == StatusSelected || status == StatusRejected {
		return true
	}
	for _, s := range j.Stages {
		if s == status {
			return true
		}
	}
	return false
}
