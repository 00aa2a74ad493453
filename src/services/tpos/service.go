package tpos

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

var ErrTPONotFound = errors.New("tpo not found")

func CreateTPO(tpo *models.TPO, password string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tpo.ID = primitive.NewObjectID()
	tpo.Email = strings.ToLower(tpo.Email)

	if err := auth.CreateLogin(ctx, tpo.Email, password, models.RoleTPO, tpo.ID); err != nil {
		return err
	}

	_, err := DB.TpoCollection.InsertOne(ctx, tpo)
	return err
}

func GetTPOs(params models.PaginationParams) ([]models.TPO, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if params.Search != "" {
		filter["name"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	total, err := DB.TpoCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())
	cursor, err := DB.TpoCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var tpos []models.TPO
	if err := cursor.All(ctx, &tpos); err != nil {
		return nil, 0, err
	}
	return tpos, total, nil
}

func GetTPOByID(id primitive.ObjectID) (*models.TPO, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var tpo models.TPO
	err := DB.TpoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&tpo)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrTPONotFound
		}
		return nil, err
	}
	return &tpo, nil
}

func UpdateTPO(id primitive.ObjectID, tpo *models.TPO) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := DB.TpoCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"name":  tpo.Name,
			"email": strings.ToLower(tpo.Email),
			"phone": tpo.Phone,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrTPONotFound
	}
	return nil
}

func DeleteTPO(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := DB.TpoCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrTPONotFound
	}
	return auth.DeleteLogin(ctx, id)
}
