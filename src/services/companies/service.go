package companies

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
	ErrCompanyNotFound = errors.New("company not found")
	ErrNameTaken       = errors.New("company name already exists")
)

func CreateCompany(company *models.Company) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := DB.CompanyCollection.CountDocuments(ctx, bson.M{"name": company.Name})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrNameTaken
	}

	company.ID = primitive.NewObjectID()
	company.Jobs = []primitive.ObjectID{}
	_, err = DB.CompanyCollection.InsertOne(ctx, company)
	return err
}

func GetCompanies(params models.PaginationParams) ([]models.Company, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if params.Search != "" {
		filter["name"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	total, err := DB.CompanyCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())
	cursor, err := DB.CompanyCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var companies []models.Company
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, 0, err
	}
	return companies, total, nil
}

func GetCompanyByID(id primitive.ObjectID) (*models.Company, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var company models.Company
	err := DB.CompanyCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&company)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func UpdateCompany(id primitive.ObjectID, company *models.Company) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := DB.CompanyCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"name":        company.Name,
			"description": company.Description,
			"website":     company.Website,
			"hrEmail":     company.HREmail,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

// DeleteCompany removes the company document only. Its JobRoles are left
// orphaned — no cascade, matching the manual fan-out model everywhere else.
func DeleteCompany(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := DB.CompanyCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

// AddJob / RemoveJob keep Company.Jobs in sync with JobRole lifecycle.
// Sequential writes, no transaction: a failure between the JobRole write and
// this one leaves the array stale.
func AddJob(ctx context.Context, companyID, jobID primitive.ObjectID) error {
	_, err := DB.CompanyCollection.UpdateOne(ctx,
		bson.M{"_id": companyID},
		bson.M{"$addToSet": bson.M{"jobs": jobID}},
	)
	return err
}

func RemoveJob(ctx context.Context, companyID, jobID primitive.ObjectID) error {
	_, err := DB.CompanyCollection.UpdateOne(ctx,
		bson.M{"_id": companyID},
		bson.M{"$pull": bson.M{"jobs": jobID}},
	)
	return err
}
