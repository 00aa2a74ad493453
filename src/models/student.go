package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Approval states for the student verification gate. Unapproved students
// cannot see or apply to drives.
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// Student academic + personal profile with placement fields.
type Student struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code         string             `bson:"code" json:"code"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone" json:"phone"`
	DepartmentID primitive.ObjectID `bson:"departmentId" json:"departmentId"`
	CGPA         float64            `bson:"cgpa" json:"cgpa"`
	Backlogs     int                `bson:"backlogs" json:"backlogs"`
	ResumeURL    string             `bson:"resumeUrl,omitempty" json:"resumeUrl,omitempty"`
	Approval     string             `bson:"approval" json:"approval"` // pending / approved / rejected

	Placed           bool     `bson:"placed" json:"placed"`
	CompanyPlaced    string   `bson:"companyPlaced,omitempty" json:"companyPlaced,omitempty"`
	JobRolePlaced    string   `bson:"jobRolePlaced,omitempty" json:"jobRolePlaced,omitempty"`
	CompaniesOffered []string `bson:"companiesOffered,omitempty" json:"companiesOffered,omitempty"`
}
