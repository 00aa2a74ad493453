package hods

import (
	"context"
	"errors"
	"strings"
	"time"

	DB "Backend-PlacementCell/src/database"
	"Backend-PlacementCell/src/models"
	"Backend-PlacementCell/src/services/auth"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrHODNotFound = errors.New("hod not found")

func CreateHOD(hod *models.HOD, password string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hod.ID = primitive.NewObjectID()
	hod.Email = strings.ToLower(hod.Email)

	if err := auth.CreateLogin(ctx, hod.Email, password, models.RoleHOD, hod.ID); err != nil {
		return err
	}

	_, err := DB.HodCollection.InsertOne(ctx, hod)
	return err
}

func GetHODs(params models.PaginationParams) ([]models.HOD, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if params.Search != "" {
		filter["name"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	total, err := DB.HodCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())
	cursor, err := DB.HodCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var hods []models.HOD
	if err := cursor.All(ctx, &hods); err != nil {
		return nil, 0, err
	}
	return hods, total, nil
}

func GetHODByID(id primitive.ObjectID) (*models.HOD, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var hod models.HOD
	err := DB.HodCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&hod)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrHODNotFound
		}
		return nil, err
	}
	return &hod, nil
}

func UpdateHOD(id primitive.ObjectID, hod *models.HOD) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := DB.HodCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"name":         hod.Name,
			"email":        strings.ToLower(hod.Email),
			"phone":        hod.Phone,
			"departmentId": hod.DepartmentID,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrHODNotFound
	}
	return nil
}

func DeleteHOD(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := DB.HodCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrHODNotFound
	}
	return auth.DeleteLogin(ctx, id)
}
