package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Company owns zero or more JobRoles. Jobs holds the ids of its drives —
// kept in sync by hand when a JobRole is created or deleted.
type Company struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name        string               `bson:"name" json:"name"`
	Description string               `bson:"description" json:"description"`
	Website     string               `bson:"website" json:"website"`
	HREmail     string               `bson:"hrEmail" json:"hrEmail"`
	Jobs        []primitive.ObjectID `bson:"jobs,omitempty" json:"jobs,omitempty"`
}
