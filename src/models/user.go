package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role values carried in the JWT and checked by route middleware.
const (
	RoleStudent = "Student"
	RoleHOD     = "HOD"
	RoleTPO     = "TPO"
	RoleAdmin   = "Admin"
)

// User is the login record. RefID points at the role profile
// (Student / HOD / TPO document) this login belongs to.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	Role     string             `bson:"role" json:"role"`
	RefID    primitive.ObjectID `bson:"refId,omitempty" json:"refId"`
}
