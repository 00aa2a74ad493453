package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	DB "Backend-PlacementCell/src/database"
	"Backend-PlacementCell/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

// AuthenticateUser checks credentials and resolves the display name from
// the role profile. Unknown email and wrong password return the same error.
func AuthenticateUser(email, password string) (*models.User, string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var dbUser models.User
	err := DB.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&dbUser)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	name := ""
	switch dbUser.Role {
	case models.RoleStudent:
		var student models.Student
		if err := DB.StudentCollection.FindOne(ctx, bson.M{"_id": dbUser.RefID}).Decode(&student); err == nil {
			name = student.Name
		}
	case models.RoleHOD:
		var hod models.HOD
		if err := DB.HodCollection.FindOne(ctx, bson.M{"_id": dbUser.RefID}).Decode(&hod); err == nil {
			name = hod.Name
		}
	case models.RoleTPO:
		var tpo models.TPO
		if err := DB.TpoCollection.FindOne(ctx, bson.M{"_id": dbUser.RefID}).Decode(&tpo); err == nil {
			name = tpo.Name
		}
	}

	return &dbUser, name, nil
}

// CreateLogin inserts the login row for a newly created role profile.
// Email uniqueness is an existence check, not a unique index.
func CreateLogin(ctx context.Context, email, password, role string, refID primitive.ObjectID) error {
	email = strings.ToLower(email)

	count, err := DB.UserCollection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = DB.UserCollection.InsertOne(ctx, models.User{
		Email:    email,
		Password: string(hashed),
		Role:     role,
		RefID:    refID,
	})
	return err
}

// DeleteLogin removes the login row of a deleted profile.
func DeleteLogin(ctx context.Context, refID primitive.ObjectID) error {
	_, err := DB.UserCollection.DeleteOne(ctx, bson.M{"refId": refID})
	if err != nil && err != mongo.ErrNoDocuments {
		return err
	}
	return nil
}
