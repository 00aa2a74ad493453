package departments

import (
	"context"
	"errors"
	"time"

	DB "Backend-PlacementCell/src/database"
	"Backend-PlacementCell/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrNameTaken          = errors.New("department name already exists")
)

func CreateDepartment(dep *models.Department) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := DB.DepartmentCollection.CountDocuments(ctx, bson.M{"name": dep.Name})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrNameTaken
	}

	dep.ID = primitive.NewObjectID()
	_, err = DB.DepartmentCollection.InsertOne(ctx, dep)
	return err
}

func GetDepartments() ([]models.Department, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := DB.DepartmentCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var deps []models.Department
	if err := cursor.All(ctx, &deps); err != nil {
		return nil, err
	}
	return deps, nil
}

func GetDepartmentByID(id primitive.ObjectID) (*models.Department, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var dep models.Department
	err := DB.DepartmentCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&dep)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrDepartmentNotFound
		}
		return nil, err
	}
	return &dep, nil
}

// ExistAll reports whether every id references an existing department.
func ExistAll(ctx context.Context, ids []primitive.ObjectID) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}
	count, err := DB.DepartmentCollection.CountDocuments(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return false, err
	}
	return count == int64(len(ids)), nil
}

func UpdateDepartment(id primitive.ObjectID, dep *models.Department) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := DB.DepartmentCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"name": dep.Name, "code": dep.Code}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrDepartmentNotFound
	}
	return nil
}

func DeleteDepartment(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := DB.DepartmentCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrDepartmentNotFound
	}
	return nil
}
