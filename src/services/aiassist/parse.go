package aiassist

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

// Models frequently wrap JSON answers in markdown fences even when told not
// to; ExtractJSON strips them before parsing.
func ExtractJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}
	// Fall back to the outermost braces when the model adds prose around
	// the object.
	if !strings.HasPrefix(s, "{") {
		start := strings.Index(s, "{")
		end := strings.LastIndex(s, "}")
		if start >= 0 && end > start {
			s = s[start : end+1]
		}
	}
	return s
}

// ExtractHTML strips markdown fences from an HTML answer.
func ExtractHTML(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```html")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}
	return s
}

func parseEntries(result gjson.Result) []ResumeEntry {
	var entries []ResumeEntry
	result.ForEach(func(_, item gjson.Result) bool {
		entries = append(entries, ResumeEntry{
			Title:       item.Get("title").String(),
			Institution: item.Get("institution").String(),
			From:        item.Get("from").String(),
			To:          item.Get("to").String(),
			Description: item.Get("description").String(),
		})
		return true
	})
	return entries
}

// ParseResumeJSON decodes the model's resume-parse answer.
func ParseResumeJSON(raw string) (*ParsedResume, error) {
	s := ExtractJSON(raw)
	if !gjson.Valid(s) {
		return nil, errors.New("model response is not valid JSON")
	}
	doc := gjson.Parse(s)

	parsed := &ParsedResume{
		Skills:         []string{},
		Education:      parseEntries(doc.Get("education")),
		Experience:     parseEntries(doc.Get("experience")),
		Certifications: parseEntries(doc.Get("certifications")),
	}
	doc.Get("skills").ForEach(func(_, v gjson.Result) bool {
		if s := strings.TrimSpace(v.String()); s != "" {
			parsed.Skills = append(parsed.Skills, s)
		}
		return true
	})
	return parsed, nil
}

// ParseHirabilityJSON decodes the score answer, clamping to 0-100.
func ParseHirabilityJSON(raw string) (*HirabilityResult, error) {
	s := ExtractJSON(raw)
	if !gjson.Valid(s) {
		return nil, errors.New("model response is not valid JSON")
	}
	doc := gjson.Parse(s)

	scoreField := doc.Get("score")
	if !scoreField.Exists() {
		return nil, errors.New("model response missing score")
	}
	score := int(scoreField.Int())
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return &HirabilityResult{
		Score:     score,
		Rationale: doc.Get("rationale").String(),
	}, nil
}

// ParseEmailTemplateJSON decodes the subject+body answer.
func ParseEmailTemplateJSON(raw string) (*EmailTemplate, error) {
	s := ExtractJSON(raw)
	if !gjson.Valid(s) {
		return nil, errors.New("model response is not valid JSON")
	}
	doc := gjson.Parse(s)

	subject := strings.TrimSpace(doc.Get("subject").String())
	body := strings.TrimSpace(doc.Get("body").String())
	if subject == "" || body == "" {
		return nil, errors.New("model response missing subject or body")
	}
	return &EmailTemplate{Subject: subject, Body: body}, nil
}
