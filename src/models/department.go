package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Department struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
	Code string             `bson:"code" json:"code"`
}
