package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CandidateEntry is one student's status inside a recruitment round.
type CandidateEntry struct {
	StudentID primitive.ObjectID `bson:"studentId" json:"studentId"`
	Status    string             `bson:"status" json:"status"`
	Remarks   string             `bson:"remarks,omitempty" json:"remarks,omitempty"`
}

// RecruitmentRound is a named evaluation event under one job role
// (e.g. "Technical Interview"). Once Published is true for a job, its
// rounds are treated as immutable — checked in the service, not enforced
// by the database.
type RecruitmentRound struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	JobID      primitive.ObjectID `bson:"jobId" json:"jobId"`
	Name       string             `bson:"name" json:"name"`
	Candidates []CandidateEntry   `bson:"candidates" json:"candidates"`
	Published  bool               `bson:"published" json:"published"`
}
