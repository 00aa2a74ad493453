package students

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	DB "Backend-PlacementCell/src/database"
	"Backend-PlacementCell/src/models"
	"Backend-PlacementCell/src/services/auth"
	"Backend-PlacementCell/src/services/mailer"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrCodeTaken       = errors.New("student code already exists")
)

// CreateStudent inserts the profile and its login row. The approval gate
// starts at pending.
func CreateStudent(student *models.Student, password string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := DB.StudentCollection.CountDocuments(ctx, bson.M{"code": student.Code})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCodeTaken
	}

	student.ID = primitive.NewObjectID()
	student.Email = strings.ToLower(student.Email)
	student.Approval = models.ApprovalPending
	student.Placed = false

	if err := auth.CreateLogin(ctx, student.Email, password, models.RoleStudent, student.ID); err != nil {
		return err
	}

	_, err = DB.StudentCollection.InsertOne(ctx, student)
	return err
}

// GetStudentsWithFilter lists students filtered by department, approval
// state and placement flag, with search on name/code.
func GetStudentsWithFilter(params models.PaginationParams, departmentIDs []primitive.ObjectID, approval string, placed *bool) ([]bson.M, int64, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	params.Normalize()
	pipeline := mongo.Pipeline{}

	if params.Search != "" {
		regex := bson.M{"$regex": params.Search, "$options": "i"}
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{
			"$or": bson.A{
				bson.M{"name": regex},
				bson.M{"code": regex},
			},
		}}})
	}

	if len(departmentIDs) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{
			"departmentId": bson.M{"$in": departmentIDs},
		}}})
	}

	if approval != "" {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{
			"approval": approval,
		}}})
	}

	if placed != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{
			"placed": *placed,
		}}})
	}

	countPipeline := append(pipeline, bson.D{{Key: "$count", Value: "total"}})
	countCursor, err := DB.StudentCollection.Aggregate(ctx, countPipeline)
	if err != nil {
		return nil, 0, 0, err
	}
	var countResult struct {
		Total int64 `bson:"total"`
	}
	if countCursor.Next(ctx) {
		_ = countCursor.Decode(&countResult)
	}
	total := countResult.Total

	pipeline = append(pipeline, bson.D{{Key: "$project", Value: bson.M{
		"_id":              0,
		"id":               "$_id",
		"code":             1,
		"name":             1,
		"email":            1,
		"phone":            1,
		"departmentId":     1,
		"cgpa":             1,
		"backlogs":         1,
		"resumeUrl":        1,
		"approval":         1,
		"placed":           1,
		"companyPlaced":    1,
		"jobRolePlaced":    1,
		"companiesOffered": 1,
	}}})

	pipeline = append(pipeline,
		bson.D{{Key: "$sort", Value: params.GetSortOrder()}},
		bson.D{{Key: "$skip", Value: params.GetSkip()}},
		bson.D{{Key: "$limit", Value: params.Limit}},
	)

	cursor, err := DB.StudentCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, 0, err
	}
	defer cursor.Close(ctx)

	var results []bson.M
	if err := cursor.All(ctx, &results); err != nil {
		return nil, 0, 0, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(params.Limit)))
	return results, total, totalPages, nil
}

// GetStudentByID returns one student.
func GetStudentByID(id primitive.ObjectID) (*models.Student, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var student models.Student
	err := DB.StudentCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&student)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}

// UpdateStudent updates the editable profile fields.
func UpdateStudent(id primitive.ObjectID, student *models.Student) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":         student.Name,
		"email":        strings.ToLower(student.Email),
		"phone":        student.Phone,
		"departmentId": student.DepartmentID,
		"cgpa":         student.CGPA,
		"backlogs":     student.Backlogs,
	}}

	res, err := DB.StudentCollection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrStudentNotFound
	}
	return nil
}

// SetApproval flips the verification gate and sends the approval/rejection
// email best-effort.
func SetApproval(id primitive.ObjectID, approved bool, reason string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	approval := models.ApprovalApproved
	if !approved {
		approval = models.ApprovalRejected
	}

	res, err := DB.StudentCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"approval": approval}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrStudentNotFound
	}

	mailer.EnqueueStudentApproval(id.Hex(), approved, reason)
	return nil
}

// SetResumeURL stores the uploaded resume reference.
func SetResumeURL(id primitive.ObjectID, url string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := DB.StudentCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"resumeUrl": url}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrStudentNotFound
	}
	return nil
}

// DeleteStudent removes the profile and its login row. Applications are
// intentionally left behind (no cascade).
func DeleteStudent(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := DB.StudentCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrStudentNotFound
	}
	return auth.DeleteLogin(ctx, id)
}
