package recruitments

import (
	"context"
	"log"
	"time"

	DB "Backend-PlacementCell/src/database"
	"Backend-PlacementCell/src/models"
	"Backend-PlacementCell/src/services/mailer"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateRound creates a named evaluation event under a job role and
// notifies the job's applicants best-effort.
func CreateRound(round *models.RecruitmentRound) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var job models.JobRole
	if err := DB.JobRoleCollection.FindOne(ctx, bson.M{"_id": round.JobID}).Decode(&job); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrJobNotFound
		}
		return err
	}

	// Rounds of a published job are immutable in effect.
	count, err := DB.RecruitmentRoundCollection.CountDocuments(ctx, bson.M{"jobId": round.JobID, "published": true})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrAlreadyPublished
	}

	round.ID = primitive.NewObjectID()
	round.Published = false
	if round.Candidates == nil {
		round.Candidates = []models.CandidateEntry{}
	}
	if _, err := DB.RecruitmentRoundCollection.InsertOne(ctx, round); err != nil {
		return err
	}

	mailer.EnqueueRoundCreated(round.ID.Hex(), round.JobID.Hex())
	return nil
}

// GetRound returns one round by id.
func GetRound(id primitive.ObjectID) (*models.RecruitmentRound, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var round models.RecruitmentRound
	err := DB.RecruitmentRoundCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&round)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRoundNotFound
		}
		return nil, err
	}
	return &round, nil
}

// GetRoundsByJob returns every round of a job, oldest first.
func GetRoundsByJob(jobID primitive.ObjectID) ([]models.RecruitmentRound, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := DB.RecruitmentRoundCollection.Find(ctx, bson.M{"jobId": jobID},
		options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rounds []models.RecruitmentRound
	if err := cursor.All(ctx, &rounds); err != nil {
		return nil, err
	}
	return rounds, nil
}

// UpdateCandidateStatus upserts a candidate entry in a round. All reference
// lookups happen before any write: a missing round/job/student returns
// not-found with no partial mutation. On Selected the student's placement
// fields are set and the matching application's history is extended. The
// status-updated email is enqueued last, after the writes have committed.
func UpdateCandidateStatus(roundID, studentID primitive.ObjectID, status, remarks string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	round, err := GetRound(roundID)
	if err != nil {
		return err
	}
	if round.Published {
		return ErrRoundPublished
	}

	var job models.JobRole
	if err := DB.JobRoleCollection.FindOne(ctx, bson.M{"_id": round.JobID}).Decode(&job); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrJobNotFound
		}
		return err
	}

	if err := ValidateStatus(&job, status); err != nil {
		return err
	}

	var student models.Student
	if err := DB.StudentCollection.FindOne(ctx, bson.M{"_id": studentID}).Decode(&student); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrStudentNotFound
		}
		return err
	}

	candidates, inserted := UpsertCandidate(round.Candidates, studentID, status, remarks)
	if _, err := DB.RecruitmentRoundCollection.UpdateOne(ctx,
		bson.M{"_id": roundID},
		bson.M{"$set": bson.M{"candidates": candidates}},
	); err != nil {
		return err
	}
	if inserted {
		log.Printf("✅ Candidate %s added to round %s (%s)", studentID.Hex(), round.Name, status)
	}

	if status == models.StatusSelected {
		if err := markStudentPlaced(ctx, &student, &job); err != nil {
			return err
		}
	}

	// Mirror the transition into the application's status history. A round
	// entry without an application (officer added the candidate by hand) is
	// not an error.
	now := time.Now()
	_, err = DB.ApplicationCollection.UpdateOne(ctx,
		bson.M{"studentId": studentID, "jobId": round.JobID},
		bson.M{
			"$set":  bson.M{"status": status},
			"$push": bson.M{"statusUpdates": models.StatusUpdate{Status: status, At: now, Note: remarks}},
		},
	)
	if err != nil {
		return err
	}

	mailer.EnqueueStatusUpdated(studentID.Hex(), round.JobID.Hex(), status, remarks)
	return nil
}

// markStudentPlaced sets placed/companyPlaced/jobRolePlaced and appends the
// company to companiesOffered.
func markStudentPlaced(ctx context.Context, student *models.Student, job *models.JobRole) error {
	var company models.Company
	if err := DB.CompanyCollection.FindOne(ctx, bson.M{"_id": job.CompanyID}).Decode(&company); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrJobNotFound
		}
		return err
	}

	_, err := DB.StudentCollection.UpdateOne(ctx,
		bson.M{"_id": student.ID},
		bson.M{
			"$set": bson.M{
				"placed":        true,
				"companyPlaced": company.Name,
				"jobRolePlaced": job.Title,
			},
			"$addToSet": bson.M{"companiesOffered": company.Name},
		},
	)
	return err
}

// PublishFinalResults closes the job's rounds and broadcasts one email per
// candidate. The published flag is guarded by a read-then-write, not a
// unique constraint: two publishes racing through the check can both pass
// and double-send. The workflow is human-paced (one officer clicks once),
// so this is accepted; the sequential second call gets a conflict.
func PublishFinalResults(jobID primitive.ObjectID) (selectedCount, rejectedCount int, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var job models.JobRole
	if err := DB.JobRoleCollection.FindOne(ctx, bson.M{"_id": jobID}).Decode(&job); err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, 0, ErrJobNotFound
		}
		return 0, 0, err
	}

	published, err := DB.RecruitmentRoundCollection.CountDocuments(ctx, bson.M{"jobId": jobID, "published": true})
	if err != nil {
		return 0, 0, err
	}

	rounds, err := GetRoundsByJob(jobID)
	if err != nil {
		return 0, 0, err
	}

	if err := CanPublish(published, len(rounds)); err != nil {
		return 0, 0, err
	}

	if _, err := DB.RecruitmentRoundCollection.UpdateMany(ctx,
		bson.M{"jobId": jobID},
		bson.M{"$set": bson.M{"published": true}},
	); err != nil {
		return 0, 0, err
	}

	selected, rejected := PartitionResults(rounds)

	selectedIDs := make([]string, 0, len(selected))
	for _, id := range selected {
		selectedIDs = append(selectedIDs, id.Hex())
	}
	rejectedIDs := make([]string, 0, len(rejected))
	for _, id := range rejected {
		rejectedIDs = append(rejectedIDs, id.Hex())
	}

	mailer.EnqueueFinalResult(jobID.Hex(), selectedIDs, rejectedIDs)

	log.Printf("✅ Published final results for job %s: %d selected, %d rejected",
		jobID.Hex(), len(selected), len(rejected))
	return len(selected), len(rejected), nil
}
