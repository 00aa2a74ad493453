package profiles

import (
	"context"
	"errors"
	"time"

	DB "Backend-PlacementCell/src/database"
	"Backend-PlacementCell/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrProfileNotFound = errors.New("student profile not found")
	ErrUnknownSection  = errors.New("unknown profile section")
	ErrItemNotFound    = errors.New("profile item not found")
)

// NormalizeItems assigns ids to new items and resets every submitted
// item's verified flag. Editing an entry always drops its verification;
// only a reviewer action sets it back.
func NormalizeItems(items []models.ProfileItem) []models.ProfileItem {
	for i := range items {
		if items[i].ID.IsZero() {
			items[i].ID = primitive.NewObjectID()
		}
		items[i].Verified = false
	}
	return items
}

// GetProfile returns a student's profile.
func GetProfile(studentID primitive.ObjectID) (*models.StudentProfile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var profile models.StudentProfile
	err := DB.StudentProfileCollection.FindOne(ctx, bson.M{"studentId": studentID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// UpsertProfile replaces a student's profile sections. Every submitted item
// comes back unverified.
func UpsertProfile(studentID primitive.ObjectID, profile *models.StudentProfile) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := DB.StudentCollection.CountDocuments(ctx, bson.M{"_id": studentID})
	if err != nil {
		return err
	}
	if count == 0 {
		return errors.New("student not found")
	}

	update := bson.M{"$set": bson.M{
		"studentId":      studentID,
		"skills":         profile.Skills,
		"education":      NormalizeItems(profile.Education),
		"experience":     NormalizeItems(profile.Experience),
		"certifications": NormalizeItems(profile.Certifications),
	}}

	_, err = DB.StudentProfileCollection.UpdateOne(ctx,
		bson.M{"studentId": studentID},
		update,
		options.Update().SetUpsert(true),
	)
	return err
}

// VerifyItem flips exactly one item's verified flag in the given section.
// Siblings and other profiles are untouched. There is no un-verify.
func VerifyItem(profile *models.StudentProfile, section string, itemID primitive.ObjectID) error {
	items := profile.Section(section)
	if items == nil {
		return ErrUnknownSection
	}
	for i := range items {
		if items[i].ID == itemID {
			items[i].Verified = true
			return nil
		}
	}
	return ErrItemNotFound
}

// VerifyProfileItem loads the profile, applies VerifyItem and persists the
// changed section.
func VerifyProfileItem(studentID primitive.ObjectID, section string, itemID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	profile, err := GetProfile(studentID)
	if err != nil {
		return err
	}

	if err := VerifyItem(profile, section, itemID); err != nil {
		return err
	}

	_, err = DB.StudentProfileCollection.UpdateOne(ctx,
		bson.M{"studentId": studentID},
		bson.M{"$set": bson.M{section: profile.Section(section)}},
	)
	return err
}
