package aiassist

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"strings"
	"time"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// Service wraps the Gemini client for the stateless AI-assist endpoints.
// Calls are retried with exponential backoff; there is no caching and no
// state beyond the client itself.
type Service struct {
	client     *genai.Client
	model      string
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration
	timeout    time.Duration
}

func NewService(ctx context.Context) (*Service, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultModel
	}

	return &Service{
		client:     client,
		model:      model,
		maxRetries: 3,
		baseDelay:  time.Second,
		maxDelay:   30 * time.Second,
		timeout:    90 * time.Second,
	}, nil
}

func (s *Service) backoff(attempt int) time.Duration {
	delay := time.Duration(float64(s.baseDelay) * math.Pow(2, float64(attempt-1)))
	if delay > s.maxDelay {
		delay = s.maxDelay
	}
	return delay
}

// generate runs one prompt (optionally with an attached file) through the
// model and returns the raw text.
func (s *Service) generate(ctx context.Context, prompt string, file []byte, mimeType string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", errors.New("prompt cannot be empty")
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var contents []*genai.Content
	if file != nil {
		parts := []*genai.Part{
			genai.NewPartFromBytes(file, mimeType),
			genai.NewPartFromText(prompt),
		}
		contents = []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	} else {
		contents = genai.Text(prompt)
	}

	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.1)),
	}

	var lastErr error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			delay := s.backoff(attempt)
			log.Printf("Retry attempt %d/%d for GenerateContent after %v", attempt, s.maxRetries, delay)
			select {
			case <-time.After(delay):
			case <-timeoutCtx.Done():
				return "", fmt.Errorf("context timeout during retry: %w", timeoutCtx.Err())
			}
		}

		result, err := s.client.Models.GenerateContent(timeoutCtx, s.model, contents, genConfig)
		if err == nil {
			text := result.Text()
			if strings.TrimSpace(text) == "" {
				return "", errors.New("empty response from model")
			}
			return text, nil
		}
		lastErr = err
	}
	return "", fmt.Errorf("generate failed after %d retries: %w", s.maxRetries, lastErr)
}

// ParseResume extracts structured sections from an uploaded resume file.
func (s *Service) ParseResume(ctx context.Context, file []byte, mimeType string) (*ParsedResume, error) {
	if len(file) == 0 {
		return nil, errors.New("resume file is empty")
	}
	raw, err := s.generate(ctx, buildParseResumePrompt(), file, mimeType)
	if err != nil {
		return nil, err
	}
	return ParseResumeJSON(raw)
}

// FormatResume turns structured profile fields into a styled HTML resume.
func (s *Service) FormatResume(ctx context.Context, req FormatResumeRequest) (string, error) {
	if req.Name == "" {
		return "", errors.New("name is required")
	}
	raw, err := s.generate(ctx, buildFormatResumePrompt(req), nil, "")
	if err != nil {
		return "", err
	}
	return ExtractHTML(raw), nil
}

// ScoreHirability rates a student's fit for a drive on a 0-100 scale.
func (s *Service) ScoreHirability(ctx context.Context, req HirabilityRequest) (*HirabilityResult, error) {
	if req.JobTitle == "" {
		return nil, errors.New("job title is required")
	}
	raw, err := s.generate(ctx, buildHirabilityPrompt(req), nil, "")
	if err != nil {
		return nil, err
	}
	return ParseHirabilityJSON(raw)
}

// GenerateEmailTemplate drafts a subject+body for a recruitment stage.
func (s *Service) GenerateEmailTemplate(ctx context.Context, req EmailTemplateRequest) (*EmailTemplate, error) {
	if req.Stage == "" || req.CompanyName == "" {
		return nil, errors.New("stage and company are required")
	}
	raw, err := s.generate(ctx, buildEmailTemplatePrompt(req), nil, "")
	if err != nil {
		return nil, err
	}
	return ParseEmailTemplateJSON(raw)
}
