package mailer

import (
	"log"

	DB "Backend-PlacementCell/src/database"

	"github.com/hibiken/asynq"
)

// Notification emails are fire-and-forget: when Redis/asynq is down or the
// enqueue fails, we log and move on. The originating write has already been
// committed and its HTTP response is never affected.

func EnqueueStudentApproval(studentID string, approved bool, reason string) {
	if DB.AsynqClient == nil {
		return
	}
	task, err := NewStudentApprovalTask(studentID, approved, reason)
	if err != nil {
		log.Println("❌ Failed to build student-approval task:", err)
		return
	}
	if _, err := DB.AsynqClient.Enqueue(task, asynq.MaxRetry(3)); err != nil {
		log.Println("❌ Failed to enqueue student-approval task:", err)
		return
	}
	log.Println("✅ Enqueued student-approval task:", studentID)
}

func EnqueueRoundCreated(roundID, jobID string) {
	if DB.AsynqClient == nil {
		return
	}
	task, err := NewRoundCreatedTask(roundID, jobID)
	if err != nil {
		log.Println("❌ Failed to build round-created task:", err)
		return
	}
	if _, err := DB.AsynqClient.Enqueue(task, asynq.TaskID("round-created-"+roundID), asynq.MaxRetry(3)); err != nil {
		log.Println("❌ Failed to enqueue round-created task:", err)
		return
	}
	log.Println("✅ Enqueued round-created task:", roundID)
}

func EnqueueStatusUpdated(studentID, jobID, status, remarks string) {
	if DB.AsynqClient == nil {
		return
	}
	task, err := NewStatusUpdatedTask(studentID, jobID, status, remarks)
	if err != nil {
		log.Println("❌ Failed to build status-updated task:", err)
		return
	}
	if _, err := DB.AsynqClient.Enqueue(task, asynq.MaxRetry(3)); err != nil {
		log.Println("❌ Failed to enqueue status-updated task:", err)
		return
	}
	log.Println("✅ Enqueued status-updated task:", studentID, status)
}

func EnqueueFinalResult(jobID string, selectedIDs, rejectedIDs []string) {
	if DB.AsynqClient == nil {
		return
	}
	task, err := NewFinalResultTask(jobID, selectedIDs, rejectedIDs)
	if err != nil {
		log.Println("❌ Failed to build final-result task:", err)
		return
	}
	if _, err := DB.AsynqClient.Enqueue(task, asynq.TaskID("final-result-"+jobID), asynq.MaxRetry(3)); err != nil {
		log.Println("❌ Failed to enqueue final-result task:", err)
		return
	}
	log.Println("✅ Enqueued final-result task:", jobID)
}
