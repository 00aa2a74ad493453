package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// TPO is a training & placement officer account profile.
type TPO struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Phone string             `bson:"phone" json:"phone"`
}
