package recruitments

import (
	"errors"
	"fmt"

	"Backend-PlacementCell/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrRoundNotFound    = errors.New("recruitment round not found")
	ErrJobNotFound      = errors.New("job role not found")
	ErrStudentNotFound  = errors.New("student not found")
	ErrInvalidStatus    = errors.New("status is not a stage of this drive")
	ErrRoundPublished   = errors.New("results for this round are already published")
	ErrAlreadyPublished = errors.New("results for this job are already published")
	ErrNoRounds         = errors.New("no recruitment rounds for this job")
)

// CanPublish is the check half of the publish flow's check-then-act guard.
// A sequential second publish sees publishedRounds > 0 and is refused; two
// concurrent publishes can both observe zero and double-send the result
// emails. That race is accepted: publishing is a single officer action.
func CanPublish(publishedRounds int64, totalRounds int) error {
	if publishedRounds > 0 {
		return ErrAlreadyPublished
	}
	if totalRounds == 0 {
		return ErrNoRounds
	}
	return nil
}

// ValidateStatus checks the client-supplied status against the drive's
// stage list plus the terminal Selected/Rejected states. Stage skipping and
// backward moves are allowed: the officer is trusted to pick a sane stage,
// just not an arbitrary string.
func ValidateStatus(job *models.JobRole, status string) error {
	if job.HasStage(status) {
		return nil
	}
	return fmt.Errorf("%w: %q (stages: %v)", ErrInvalidStatus, status, job.Stages)
}

// UpsertCandidate inserts or updates the student's entry in the candidate
// list and reports whether a new entry was inserted.
func UpsertCandidate(entries []models.CandidateEntry, studentID primitive.ObjectID, status, remarks string) ([]models.CandidateEntry, bool) {
	for i := range entries {
		if entries[i].StudentID == studentID {
			entries[i].Status = status
			entries[i].Remarks = remarks
			return entries, false
		}
	}
	return append(entries, models.CandidateEntry{
		StudentID: studentID,
		Status:    status,
		Remarks:   remarks,
	}), true
}

// PartitionResults splits every candidate of a job's rounds into selected
// and rejected sets. A student marked Selected in any round counts as
// selected; everyone else who appears counts as rejected. Each student is
// reported once.
func PartitionResults(rounds []models.RecruitmentRound) (selected, rejected []primitive.ObjectID) {
	selectedSet := map[primitive.ObjectID]struct{}{}
	seen := map[primitive.ObjectID]struct{}{}

	for _, r := range rounds {
		for _, c := range r.Candidates {
			seen[c.StudentID] = struct{}{}
			if c.Status == models.StatusSelected {
				selectedSet[c.StudentID] = struct{}{}
			}
		}
	}

	for _, r := range rounds {
		for _, c := range r.Candidates {
			id := c.StudentID
			if _, ok := seen[id]; !ok {
				continue
			}
			delete(seen, id) // emit each student once
			if _, ok := selectedSet[id]; ok {
				selected = append(selected, id)
			} else {
				rejected = append(rejected, id)
			}
		}
	}
	return selected, rejected
}
