package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// HOD is a department head account profile.
type HOD struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone" json:"phone"`
	DepartmentID primitive.ObjectID `bson:"departmentId" json:"departmentId"`
}
