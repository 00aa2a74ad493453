package applications

import (
	"context"
	"errors"
	"time"

	DB "Backend-PlacementCell/src/database"
	"Backend-PlacementCell/src/models"
	"Backend-PlacementCell/src/services/jobroles"
	"Backend-PlacementCell/src/services/mailer"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrStudentNotFound     = errors.New("student not found")
	ErrJobNotFound         = errors.New("job role not found")
	ErrNotEligible         = errors.New("student is not eligible for this drive")
	ErrDuplicateApply      = errors.New("student has already applied to this drive")
	ErrInvalidStatus       = errors.New("status is not a stage of this drive")
)

// CanApply is the admission rule for a new application: the student must
// pass the drive's eligibility checks and must not already hold an
// application for it. Duplicate submissions are rejected outright rather
// than merged.
func CanApply(student *models.Student, job *models.JobRole, hasExisting bool, now time.Time) error {
	if hasExisting {
		return ErrDuplicateApply
	}
	if !jobroles.IsEligible(student, job, now) {
		return ErrNotEligible
	}
	return nil
}

// Apply creates an application in the Applied state with a one-entry
// status history.
func Apply(studentID, jobID primitive.ObjectID, resumeURL, coverLetter string) (*models.Application, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var student models.Student
	if err := DB.StudentCollection.FindOne(ctx, bson.M{"_id": studentID}).Decode(&student); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	var job models.JobRole
	if err := DB.JobRoleCollection.FindOne(ctx, bson.M{"_id": jobID}).Decode(&job); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	existing, err := DB.ApplicationCollection.CountDocuments(ctx, bson.M{"studentId": studentID, "jobId": jobID})
	if err != nil {
		return nil, err
	}

	if err := CanApply(&student, &job, existing > 0, time.Now()); err != nil {
		return nil, err
	}

	if resumeURL == "" {
		resumeURL = student.ResumeURL
	}

	app := &models.Application{
		ID:          primitive.NewObjectID(),
		StudentID:   studentID,
		JobID:       jobID,
		ResumeURL:   resumeURL,
		CoverLetter: coverLetter,
		CreatedAt:   time.Now(),
	}
	app.AppendStatus(models.StatusApplied, "", app.CreatedAt)

	if _, err := DB.ApplicationCollection.InsertOne(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func GetApplicationByID(id primitive.ObjectID) (*models.Application, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var app models.Application
	err := DB.ApplicationCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&app)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func GetApplicationsByStudent(studentID primitive.ObjectID) ([]models.Application, error) {
	return findApplications(bson.M{"studentId": studentID})
}

func GetApplicationsByJob(jobID primitive.ObjectID) ([]models.Application, error) {
	return findApplications(bson.M{"jobId": jobID})
}

func findApplications(filter bson.M) ([]models.Application, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := DB.ApplicationCollection.Find(ctx, filter, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var apps []models.Application
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// UpdateStatus appends a transition to the application's history and keeps
// the status field in sync, then enqueues the notification email.
func UpdateStatus(id primitive.ObjectID, status, note string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	app, err := GetApplicationByID(id)
	if err != nil {
		return err
	}

	var job models.JobRole
	if err := DB.JobRoleCollection.FindOne(ctx, bson.M{"_id": app.JobID}).Decode(&job); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrJobNotFound
		}
		return err
	}
	if !job.HasStage(status) {
		return ErrInvalidStatus
	}

	now := time.Now()
	_, err = DB.ApplicationCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$set":  bson.M{"status": status},
			"$push": bson.M{"statusUpdates": models.StatusUpdate{Status: status, At: now, Note: note}},
		},
	)
	if err != nil {
		return err
	}

	mailer.EnqueueStatusUpdated(app.StudentID.Hex(), app.JobID.Hex(), status, note)
	return nil
}

// SetOfferLetterURL stores the uploaded offer letter's URL on the
// application.
func SetOfferLetterURL(id primitive.ObjectID, url string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := DB.ApplicationCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"offerLetterUrl": url}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
