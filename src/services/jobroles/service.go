package jobroles

import (
	"context"
	"errors"
	"time"

	DB "Backend-PlacementCell/src/database"
	"Backend-PlacementCell/src/models"
	"Backend-PlacementCell/src/services/companies"
	"Backend-PlacementCell/src/services/departments"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrJobNotFound        = errors.New("job role not found")
	ErrCompanyNotFound    = errors.New("company not found")
	ErrDepartmentNotFound = errors.New("eligible department not found")
	ErrStudentNotFound    = errors.New("student not found")
)

// CreateJobRole validates the company and department references before
// anything is written, then inserts the drive and fans its id out into the
// owning company's jobs array.
func CreateJobRole(job *models.JobRole) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := DB.CompanyCollection.CountDocuments(ctx, bson.M{"_id": job.CompanyID})
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrCompanyNotFound
	}

	ok, err := departments.ExistAll(ctx, job.EligibleDepartments)
	if err != nil {
		return err
	}
	if !ok {
		return ErrDepartmentNotFound
	}

	job.ID = primitive.NewObjectID()
	if len(job.Stages) == 0 {
		job.Stages = append([]string{}, models.DefaultStages...)
	}

	if _, err := DB.JobRoleCollection.InsertOne(ctx, job); err != nil {
		return err
	}

	return companies.AddJob(ctx, job.CompanyID, job.ID)
}

func GetJobRoles(params models.PaginationParams) ([]models.JobRole, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if params.Search != "" {
		filter["title"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	total, err := DB.JobRoleCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())
	cursor, err := DB.JobRoleCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var jobs []models.JobRole
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func GetJobRoleByID(id primitive.ObjectID) (*models.JobRole, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var job models.JobRole
	err := DB.JobRoleCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&job)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// IsEligible applies the drive's eligibility rules to a student. The
// approval gate is checked first: unapproved students see nothing.
func IsEligible(student *models.Student, job *models.JobRole, now time.Time) bool {
	if student.Approval != models.ApprovalApproved {
		return false
	}
	if now.After(job.ApplicationDeadline) {
		return false
	}
	if student.CGPA < job.MinCGPA {
		return false
	}
	if student.Backlogs > job.MaxBacklogs {
		return false
	}
	if len(job.EligibleDepartments) == 0 {
		return true
	}
	for _, d := range job.EligibleDepartments {
		if d == student.DepartmentID {
			return true
		}
	}
	return false
}

// GetEligibleJobRoles lists the drives a student may apply to.
func GetEligibleJobRoles(studentID primitive.ObjectID) ([]models.JobRole, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var student models.Student
	if err := DB.StudentCollection.FindOne(ctx, bson.M{"_id": studentID}).Decode(&student); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	cursor, err := DB.JobRoleCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	now := time.Now()
	var eligible []models.JobRole
	for cursor.Next(ctx) {
		var job models.JobRole
		if err := cursor.Decode(&job); err != nil {
			continue
		}
		if IsEligible(&student, &job, now) {
			eligible = append(eligible, job)
		}
	}
	return eligible, nil
}

func UpdateJobRole(id primitive.ObjectID, job *models.JobRole) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Stage list is not part of the update: it is assumed immutable once
	// candidates exist.
	res, err := DB.JobRoleCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"title":               job.Title,
			"description":         job.Description,
			"eligibleDepartments": job.EligibleDepartments,
			"minCgpa":             job.MinCGPA,
			"maxBacklogs":         job.MaxBacklogs,
			"ctc":                 job.CTC,
			"applicationDeadline": job.ApplicationDeadline,
			"driveDate":           job.DriveDate,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrJobNotFound
	}
	return nil
}

// DeleteJobRole removes the drive and pulls its id from the owning
// company's jobs array — two sequential writes, no transaction.
func DeleteJobRole(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	job, err := GetJobRoleByID(id)
	if err != nil {
		return err
	}

	res, err := DB.JobRoleCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrJobNotFound
	}

	return companies.RemoveJob(ctx, job.CompanyID, id)
}
