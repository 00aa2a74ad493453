package mailer

import (
	"bytes"
	"html/template"
)

// Email bodies are small self-contained HTML fragments. The dashboard link
// is injected by the caller from FRONTEND_URL.

type ApprovalEmailData struct {
	StudentName   string
	Approved      bool
	Reason        string
	DashboardLink string
}

type RoundCreatedEmailData struct {
	StudentName string
	RoundName   string
	JobTitle    string
	CompanyName string
	DetailLink  string
}

type StatusUpdatedEmailData struct {
	StudentName string
	JobTitle    string
	CompanyName string
	Status      string
	Remarks     string
	DetailLink  string
}

type FinalResultEmailData struct {
	StudentName string
	JobTitle    string
	CompanyName string
	Selected    bool
}

var approvalTmpl = template.Must(template.New("approval").Parse(`
<div style="font-family:Arial,sans-serif">
  <p>Dear {{.StudentName}},</p>
  {{if .Approved}}
  <p>Your placement profile has been <b>approved</b>. You can now browse and apply to drives.</p>
  {{else}}
  <p>Your placement profile has been <b>rejected</b>.{{if .Reason}} Reason: {{.Reason}}{{end}}</p>
  {{end}}
  <p><a href="{{.DashboardLink}}">Open your dashboard</a></p>
  <p>— Training &amp; Placement Cell</p>
</div>`))

var roundCreatedTmpl = template.Must(template.New("roundCreated").Parse(`
<div style="font-family:Arial,sans-serif">
  <p>Dear {{.StudentName}},</p>
  <p>A new round <b>{{.RoundName}}</b> has been scheduled for <b>{{.JobTitle}}</b> at <b>{{.CompanyName}}</b>.</p>
  <p><a href="{{.DetailLink}}">View drive details</a></p>
  <p>— Training &amp; Placement Cell</p>
</div>`))

var statusUpdatedTmpl = template.Must(template.New("statusUpdated").Parse(`
<div style="font-family:Arial,sans-serif">
  <p>Dear {{.StudentName}},</p>
  <p>Your status for <b>{{.JobTitle}}</b> at <b>{{.CompanyName}}</b> is now: <b>{{.Status}}</b>.</p>
  {{if .Remarks}}<p>Remarks: {{.Remarks}}</p>{{end}}
  <p><a href="{{.DetailLink}}">View your application</a></p>
  <p>— Training &amp; Placement Cell</p>
</div>`))

var finalResultTmpl = template.Must(template.New("finalResult").Parse(`
<div style="font-family:Arial,sans-serif">
  <p>Dear {{.StudentName}},</p>
  {{if .Selected}}
  <p>Congratulations! You have been <b>selected</b> for <b>{{.JobTitle}}</b> at <b>{{.CompanyName}}</b>. The placement cell will contact you with the offer details.</p>
  {{else}}
  <p>We regret to inform you that you were not selected for <b>{{.JobTitle}}</b> at <b>{{.CompanyName}}</b>. Keep applying — more drives are on the way.</p>
  {{end}}
  <p>— Training &amp; Placement Cell</p>
</div>`))

func RenderApprovalEmail(d ApprovalEmailData) (string, error) {
	var buf bytes.Buffer
	if err := approvalTmpl.Execute(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func RenderRoundCreatedEmail(d RoundCreatedEmailData) (string, error) {
	var buf bytes.Buffer
	if err := roundCreatedTmpl.Execute(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func RenderStatusUpdatedEmail(d StatusUpdatedEmailData) (string, error) {
	var buf bytes.Buffer
	if err := statusUpdatedTmpl.Execute(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func RenderFinalResultEmail(d FinalResultEmailData) (string, error) {
	var buf bytes.Buffer
	if err := finalResultTmpl.Execute(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}
