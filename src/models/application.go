package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusUpdate is one entry in an application's ordered status history.
type StatusUpdate struct {
	Status string    `bson:"status" json:"status"`
	At     time.Time `bson:"at" json:"at"`
	Note   string    `bson:"note,omitempty" json:"note,omitempty"`
}

// Application is a student's submission against a drive. Status must always
// equal the last entry of StatusUpdates; AppendStatus is the only way the
// services mutate either field. Applications are never deleted.
type Application struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID     primitive.ObjectID `bson:"studentId" json:"studentId"`
	JobID         primitive.ObjectID `bson:"jobId" json:"jobId"`
	Status        string             `bson:"status" json:"status"`
	StatusUpdates []StatusUpdate     `bson:"statusUpdates" json:"statusUpdates"`
	ResumeURL     string             `bson:"resumeUrl,omitempty" json:"resumeUrl,omitempty"`
	CoverLetter   string             `bson:"coverLetter,omitempty" json:"coverLetter,omitempty"`
	OfferLetter   string             `bson:"offerLetterUrl,omitempty" json:"offerLetterUrl,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// AppendStatus records a transition and keeps Status in sync with the
// history tail.
func (a *Application) AppendStatus(status, note string, at time.Time) {
	a.StatusUpdates = append(a.StatusUpdates, StatusUpdate{Status: status, At: at, Note: note})
	a.Status = status
}
