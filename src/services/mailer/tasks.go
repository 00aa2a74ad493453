package mailer

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	TypeStudentApproval = "email:student-approval"
	TypeRoundCreated    = "email:round-created"
	TypeStatusUpdated   = "email:status-updated"
	TypeFinalResult     = "email:final-result"
)

type StudentApprovalPayload struct {
	StudentID string `json:"studentId"`
	Approved  bool   `json:"approved"`
	Reason    string `json:"reason,omitempty"`
}

type RoundCreatedPayload struct {
	RoundID string `json:"roundId"`
	JobID   string `json:"jobId"`
}

type StatusUpdatedPayload struct {
	StudentID string `json:"studentId"`
	JobID     string `json:"jobId"`
	Status    string `json:"status"`
	Remarks   string `json:"remarks,omitempty"`
}

type FinalResultPayload struct {
	JobID       string   `json:"jobId"`
	SelectedIDs []string `json:"selectedIds"`
	RejectedIDs []string `json:"rejectedIds"`
}

func NewStudentApprovalTask(studentID string, approved bool, reason string) (*asynq.Task, error) {
	b, err := json.Marshal(StudentApprovalPayload{StudentID: studentID, Approved: approved, Reason: reason})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeStudentApproval, b), nil
}

func NewRoundCreatedTask(roundID, jobID string) (*asynq.Task, error) {
	b, err := json.Marshal(RoundCreatedPayload{RoundID: roundID, JobID: jobID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeRoundCreated, b), nil
}

func NewStatusUpdatedTask(studentID, jobID, status, remarks string) (*asynq.Task, error) {
	b, err := json.Marshal(StatusUpdatedPayload{StudentID: studentID, JobID: jobID, Status: status, Remarks: remarks})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeStatusUpdated, b), nil
}

func NewFinalResultTask(jobID string, selectedIDs, rejectedIDs []string) (*asynq.Task, error) {
	b, err := json.Marshal(FinalResultPayload{JobID: jobID, SelectedIDs: selectedIDs, RejectedIDs: rejectedIDs})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeFinalResult, b), nil
}
