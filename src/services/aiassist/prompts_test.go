package aiassist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildHirabilityPrompt(t *testing.T) {
	prompt := buildHirabilityPrompt(HirabilityRequest{
		JobTitle:       "Backend Engineer",
		CompanyName:    "Acme Corp",
		JobDescription: "Go services over MongoDB",
		MinCGPA:        7.0,
		StudentCGPA:    8.3,
		Skills:         []string{"Go", "MongoDB"},
		Experience:     []string{"Summer intern at a fintech startup"},
	})

	assert.Contains(t, prompt, "Backend Engineer")
	assert.Contains(t, prompt, "Acme Corp")
	assert.Contains(t, prompt, "Minimum CGPA: 7.00")
	assert.Contains(t, prompt, "Go, MongoDB")
	assert.Contains(t, prompt, `"score"`)
}

func TestBuildFormatResumePrompt(t *testing.T) {
	prompt := buildFormatResumePrompt(FormatResumeRequest{
		Name:   "Priya Sharma",
		Email:  "priya@example.edu",
		Skills: []string{"Go"},
		Education: []ResumeEntry{
			{Title: "B.Tech CSE", Institution: "NIT Trichy", From: "2022", To: "2026"},
		},
	})

	assert.Contains(t, prompt, "Priya Sharma")
	assert.Contains(t, prompt, "B.Tech CSE at NIT Trichy (2022 - 2026)")
	assert.Contains(t, prompt, "ONLY the HTML")
}

func TestBuildEmailTemplatePrompt(t *testing.T) {
	prompt := buildEmailTemplatePrompt(EmailTemplateRequest{
		Stage:       "Technical Interview",
		CompanyName: "Acme Corp",
		JobTitle:    "Backend Engineer",
		StudentName: "Arun",
	})

	assert.Contains(t, prompt, "Technical Interview")
	assert.Contains(t, prompt, `{"subject": "...", "body": "..."}`)
}
