package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ProfileItem is one entry in a profile section (education / experience /
// certification). Verified defaults to false on create and is reset to
// false whenever the item is edited; a reviewer flips it true.
type ProfileItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Institution string             `bson:"institution,omitempty" json:"institution,omitempty"`
	From        string             `bson:"from,omitempty" json:"from,omitempty"`
	To          string             `bson:"to,omitempty" json:"to,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Verified    bool               `bson:"verified" json:"verified"`
}

// Profile section names accepted by the verify-item endpoint.
const (
	SectionEducation      = "education"
	SectionExperience     = "experience"
	SectionCertifications = "certifications"
)

// StudentProfile holds the verifiable CV sections of one student.
type StudentProfile struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID      primitive.ObjectID `bson:"studentId" json:"studentId"`
	Skills         []string           `bson:"skills,omitempty" json:"skills,omitempty"`
	Education      []ProfileItem      `bson:"education,omitempty" json:"education,omitempty"`
	Experience     []ProfileItem      `bson:"experience,omitempty" json:"experience,omitempty"`
	Certifications []ProfileItem      `bson:"certifications,omitempty" json:"certifications,omitempty"`
}

// Section returns the named section slice, or nil for an unknown name.
func (p *StudentProfile) Section(name string) []ProfileItem {
	switch name {
	case SectionEducation:
		return p.Education
	case SectionExperience:
		return p.Experience
	case SectionCertifications:
		return p.Certifications
	}
	return nil
}
