package aiassist

import (
	"fmt"
	"strings"
)

// Request/response shapes for the four AI-assist endpoints.

type ResumeEntry struct {
	Title       string `json:"title"`
	Institution string `json:"institution,omitempty"`
	From        string `json:"from,omitempty"`
	To          string `json:"to,omitempty"`
	Description string `json:"description,omitempty"`
}

type ParsedResume struct {
	Skills         []string      `json:"skills"`
	Education      []ResumeEntry `json:"education"`
	Experience     []ResumeEntry `json:"experience"`
	Certifications []ResumeEntry `json:"certifications"`
}

type FormatResumeRequest struct {
	Name           string        `json:"name" validate:"required"`
	Email          string        `json:"email"`
	Phone          string        `json:"phone"`
	Skills         []string      `json:"skills"`
	Education      []ResumeEntry `json:"education"`
	Experience     []ResumeEntry `json:"experience"`
	Certifications []ResumeEntry `json:"certifications"`
}

type HirabilityRequest struct {
	JobTitle       string   `json:"jobTitle"`
	JobDescription string   `json:"jobDescription"`
	CompanyName    string   `json:"companyName"`
	MinCGPA        float64  `json:"minCgpa"`
	StudentCGPA    float64  `json:"studentCgpa"`
	Skills         []string `json:"skills"`
	Experience     []string `json:"experience"`
}

type HirabilityResult struct {
	Score     int    `json:"score"`
	Rationale string `json:"rationale"`
}

type EmailTemplateRequest struct {
	Stage       string `json:"stage" validate:"required"`
	CompanyName string `json:"companyName" validate:"required"`
	JobTitle    string `json:"jobTitle"`
	StudentName string `json:"studentName"`
}

type EmailTemplate struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func buildParseResumePrompt() string {
	var sb strings.Builder
	sb.WriteString("You are a resume parser for a campus placement system. ")
	sb.WriteString("Extract the content of the attached resume into JSON.\n\n")
	sb.WriteString("Respond with ONLY a JSON object in this exact shape:\n")
	sb.WriteString(`{
  "skills": ["skill", ...],
  "education": [{"title": "", "institution": "", "from": "", "to": "", "description": ""}],
  "experience": [{"title": "", "institution": "", "from": "", "to": "", "description": ""}],
  "certifications": [{"title": "", "institution": "", "from": "", "to": "", "description": ""}]
}`)
	sb.WriteString("\n\nUse empty arrays for sections that are missing. Do not invent entries.")
	return sb.String()
}

func buildFormatResumePrompt(req FormatResumeRequest) string {
	var sb strings.Builder
	sb.WriteString("You are a resume formatter. Produce a clean, single-page HTML resume ")
	sb.WriteString("(inline CSS only, no external assets) for the following candidate. ")
	sb.WriteString("Respond with ONLY the HTML document.\n\n")

	sb.WriteString(fmt.Sprintf("Name: %s\n", req.Name))
	if req.Email != "" {
		sb.WriteString(fmt.Sprintf("Email: %s\n", req.Email))
	}
	if req.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone: %s\n", req.Phone))
	}
	if len(req.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills: %s\n", strings.Join(req.Skills, ", ")))
	}

	writeEntries := func(label string, entries []ResumeEntry) {
		if len(entries) == 0 {
			return
		}
		sb.WriteString("\n" + label + ":\n")
		for _, e := range entries {
			sb.WriteString(fmt.Sprintf("- %s", e.Title))
			if e.Institution != "" {
				sb.WriteString(" at " + e.Institution)
			}
			if e.From != "" || e.To != "" {
				sb.WriteString(fmt.Sprintf(" (%s - %s)", e.From, e.To))
			}
			if e.Description != "" {
				sb.WriteString(": " + e.Description)
			}
			sb.WriteString("\n")
		}
	}
	writeEntries("Education", req.Education)
	writeEntries("Experience", req.Experience)
	writeEntries("Certifications", req.Certifications)

	return sb.String()
}

func buildHirabilityPrompt(req HirabilityRequest) string {
	var sb strings.Builder
	sb.WriteString("You are an expert campus recruiter evaluating a student's fit for a job drive.\n\n")

	sb.WriteString("## JOB\n")
	sb.WriteString(fmt.Sprintf("Title: %s\n", req.JobTitle))
	sb.WriteString(fmt.Sprintf("Company: %s\n", req.CompanyName))
	if req.JobDescription != "" {
		sb.WriteString(fmt.Sprintf("Description: %s\n", req.JobDescription))
	}
	if req.MinCGPA > 0 {
		sb.WriteString(fmt.Sprintf("Minimum CGPA: %.2f\n", req.MinCGPA))
	}

	sb.WriteString("\n## STUDENT\n")
	if req.StudentCGPA > 0 {
		sb.WriteString(fmt.Sprintf("CGPA: %.2f\n", req.StudentCGPA))
	}
	if len(req.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills: %s\n", strings.Join(req.Skills, ", ")))
	}
	for _, e := range req.Experience {
		sb.WriteString(fmt.Sprintf("Experience: %s\n", e))
	}

	sb.WriteString("\nScore the student's hirability for this job from 0 to 100 and explain briefly.\n")
	sb.WriteString(`Respond with ONLY a JSON object: {"score": <0-100>, "rationale": "<2-3 sentences>"}`)
	return sb.String()
}

func buildEmailTemplatePrompt(req EmailTemplateRequest) string {
	var sb strings.Builder
	sb.WriteString("Draft a professional email from a university placement cell to a student ")
	sb.WriteString("about a recruitment stage.\n\n")
	sb.WriteString(fmt.Sprintf("Stage: %s\n", req.Stage))
	sb.WriteString(fmt.Sprintf("Company: %s\n", req.CompanyName))
	if req.JobTitle != "" {
		sb.WriteString(fmt.Sprintf("Job role: %s\n", req.JobTitle))
	}
	if req.StudentName != "" {
		sb.WriteString(fmt.Sprintf("Student name: %s\n", req.StudentName))
	}
	sb.WriteString("\nKeep it short and specific. ")
	sb.WriteString(`Respond with ONLY a JSON object: {"subject": "...", "body": "..."}`)
	return sb.String()
}
