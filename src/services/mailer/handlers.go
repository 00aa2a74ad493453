package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	DB "Backend-PlacementCell/src/database"
	"Backend-PlacementCell/src/models"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func frontendBase() string {
	base := strings.TrimRight(os.Getenv("FRONTEND_URL"), "/")
	if base == "" {
		base = "http://localhost:9000"
	}
	return base
}

func loadStudent(ctx context.Context, hexID string) (*models.Student, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, fmt.Errorf("bad student id %q: %w", hexID, err)
	}
	var st models.Student
	if err := DB.StudentCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&st); err != nil {
		return nil, fmt.Errorf("student not found: %s", hexID)
	}
	return &st, nil
}

func loadJobWithCompany(ctx context.Context, hexID string) (*models.JobRole, *models.Company, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, nil, fmt.Errorf("bad job id %q: %w", hexID, err)
	}
	var job models.JobRole
	if err := DB.JobRoleCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&job); err != nil {
		return nil, nil, fmt.Errorf("job not found: %s", hexID)
	}
	var company models.Company
	if err := DB.CompanyCollection.FindOne(ctx, bson.M{"_id": job.CompanyID}).Decode(&company); err != nil {
		return nil, nil, fmt.Errorf("company not found for job %s", hexID)
	}
	return &job, &company, nil
}

func HandleStudentApproval(sender MailSender) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p StudentApprovalPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return err
		}

		st, err := loadStudent(ctx, p.StudentID)
		if err != nil {
			log.Println("⚠️ approval: skipping,", err)
			return nil // deleted since enqueue, nothing to do
		}

		html, err := RenderApprovalEmail(ApprovalEmailData{
			StudentName:   st.Name,
			Approved:      p.Approved,
			Reason:        p.Reason,
			DashboardLink: frontendBase() + "/student/dashboard",
		})
		if err != nil {
			return err
		}

		subject := "Placement profile approved"
		if !p.Approved {
			subject = "Placement profile rejected"
		}
		if err := sender.Send(st.Email, subject, html); err != nil {
			log.Printf("❌ approval: send failed to %s: %v", st.Email, err)
			return err
		}
		return nil
	}
}

func HandleRoundCreated(sender MailSender) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p RoundCreatedPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return err
		}

		roundID, err := primitive.ObjectIDFromHex(p.RoundID)
		if err != nil {
			return err
		}
		var round models.RecruitmentRound
		if err := DB.RecruitmentRoundCollection.FindOne(ctx, bson.M{"_id": roundID}).Decode(&round); err != nil {
			log.Println("⚠️ round-created: round not found, skipping:", p.RoundID)
			return nil
		}

		job, company, err := loadJobWithCompany(ctx, p.JobID)
		if err != nil {
			log.Println("⚠️ round-created: skipping,", err)
			return nil
		}

		jobID, _ := primitive.ObjectIDFromHex(p.JobID)
		cur, err := DB.ApplicationCollection.Find(ctx, bson.M{"jobId": jobID})
		if err != nil {
			return err
		}
		defer cur.Close(ctx)

		detail := frontendBase() + "/student/drives/" + p.JobID
		sent := 0
		for cur.Next(ctx) {
			var app models.Application
			if err := cur.Decode(&app); err != nil {
				continue
			}
			st, err := loadStudent(ctx, app.StudentID.Hex())
			if err != nil {
				continue
			}
			html, err := RenderRoundCreatedEmail(RoundCreatedEmailData{
				StudentName: st.Name,
				RoundName:   round.Name,
				JobTitle:    job.Title,
				CompanyName: company.Name,
				DetailLink:  detail,
			})
			if err != nil {
				continue
			}
			subject := round.Name + " scheduled: " + job.Title + " @ " + company.Name
			if err := sender.Send(st.Email, subject, html); err != nil {
				log.Printf("❌ round-created: send failed to %s: %v", st.Email, err)
				continue
			}
			sent++
		}
		log.Printf("✅ round-created: notified %d applicants for round %s", sent, p.RoundID)
		return nil
	}
}

func HandleStatusUpdated(sender MailSender) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p StatusUpdatedPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return err
		}

		st, err := loadStudent(ctx, p.StudentID)
		if err != nil {
			log.Println("⚠️ status-updated: skipping,", err)
			return nil
		}
		job, company, err := loadJobWithCompany(ctx, p.JobID)
		if err != nil {
			log.Println("⚠️ status-updated: skipping,", err)
			return nil
		}

		html, err := RenderStatusUpdatedEmail(StatusUpdatedEmailData{
			StudentName: st.Name,
			JobTitle:    job.Title,
			CompanyName: company.Name,
			Status:      p.Status,
			Remarks:     p.Remarks,
			DetailLink:  frontendBase() + "/student/applications",
		})
		if err != nil {
			return err
		}

		subject := "Application update: " + job.Title + " @ " + company.Name
		if err := sender.Send(st.Email, subject, html); err != nil {
			log.Printf("❌ status-updated: send failed to %s: %v", st.Email, err)
			return err
		}
		return nil
	}
}

func HandleFinalResult(sender MailSender) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p FinalResultPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return err
		}

		job, company, err := loadJobWithCompany(ctx, p.JobID)
		if err != nil {
			log.Println("⚠️ final-result: skipping,", err)
			return nil
		}

		send := func(ids []string, selected bool) {
			for _, hexID := range ids {
				st, err := loadStudent(ctx, hexID)
				if err != nil {
					continue
				}
				html, err := RenderFinalResultEmail(FinalResultEmailData{
					StudentName: st.Name,
					JobTitle:    job.Title,
					CompanyName: company.Name,
					Selected:    selected,
				})
				if err != nil {
					continue
				}
				subject := "Final result: " + job.Title + " @ " + company.Name
				if err := sender.Send(st.Email, subject, html); err != nil {
					log.Printf("❌ final-result: send failed to %s: %v", st.Email, err)
				}
			}
		}
		send(p.SelectedIDs, true)
		send(p.RejectedIDs, false)

		log.Printf("✅ final-result: notified %d selected, %d rejected for job %s",
			len(p.SelectedIDs), len(p.RejectedIDs), p.JobID)
		return nil
	}
}

// RegisterHandlers binds every email task type to its handler. Fails at
// worker start when the SMTP env is incomplete.
func RegisterHandlers(mux *asynq.ServeMux) error {
	sender, err := NewSMTPSenderFromEnv()
	if err != nil {
		return err
	}

	mux.HandleFunc(TypeStudentApproval, HandleStudentApproval(sender))
	mux.HandleFunc(TypeRoundCreated, HandleRoundCreated(sender))
	mux.HandleFunc(TypeStatusUpdated, HandleStatusUpdated(sender))
	mux.HandleFunc(TypeFinalResult, HandleFinalResult(sender))

	return nil
}
