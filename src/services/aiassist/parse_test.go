package aiassist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	t.Run("PlainObject", func(t *testing.T) {
		assert.Equal(t, `{"a":1}`, ExtractJSON(`{"a":1}`))
	})

	t.Run("FencedJSON", func(t *testing.T) {
		raw := "```json\n{\"a\":1}\n```"
		assert.Equal(t, `{"a":1}`, ExtractJSON(raw))
	})

	t.Run("ProseAroundObject", func(t *testing.T) {
		raw := "Here is the result:\n{\"a\":1}\nHope that helps!"
		assert.Equal(t, `{"a":1}`, ExtractJSON(raw))
	})
}

func TestParseResumeJSON(t *testing.T) {
	raw := "```json\n" + `{
  "skills": ["Go", "MongoDB", " "],
  "education": [{"title": "B.Tech CSE", "institution": "NIT Trichy", "from": "2022", "to": "2026"}],
  "experience": [],
  "certifications": [{"title": "AWS Cloud Practitioner"}]
}` + "\n```"

	parsed, err := ParseResumeJSON(raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"Go", "MongoDB"}, parsed.Skills)
	require.Len(t, parsed.Education, 1)
	assert.Equal(t, "B.Tech CSE", parsed.Education[0].Title)
	assert.Equal(t, "NIT Trichy", parsed.Education[0].Institution)
	assert.Empty(t, parsed.Experience)
	require.Len(t, parsed.Certifications, 1)
}

func TestParseResumeJSONInvalid(t *testing.T) {
	_, err := ParseResumeJSON("sorry, I can't read this file")
	assert.Error(t, err)
}

func TestParseHirabilityJSON(t *testing.T) {
	t.Run("ValidScore", func(t *testing.T) {
		res, err := ParseHirabilityJSON(`{"score": 72, "rationale": "Strong backend skills, CGPA above cutoff."}`)
		require.NoError(t, err)
		assert.Equal(t, 72, res.Score)
		assert.Contains(t, res.Rationale, "CGPA")
	})

	t.Run("ClampsOutOfRange", func(t *testing.T) {
		res, err := ParseHirabilityJSON(`{"score": 140, "rationale": "x"}`)
		require.NoError(t, err)
		assert.Equal(t, 100, res.Score)

		res, err = ParseHirabilityJSON(`{"score": -5, "rationale": "x"}`)
		require.NoError(t, err)
		assert.Equal(t, 0, res.Score)
	})

	t.Run("MissingScore", func(t *testing.T) {
		_, err := ParseHirabilityJSON(`{"rationale": "no score"}`)
		assert.Error(t, err)
	})
}

func TestParseEmailTemplateJSON(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		tmpl, err := ParseEmailTemplateJSON("```json\n{\"subject\": \"Interview scheduled\", \"body\": \"Dear student...\"}\n```")
		require.NoError(t, err)
		assert.Equal(t, "Interview scheduled", tmpl.Subject)
		assert.NotEmpty(t, tmpl.Body)
	})

	t.Run("MissingBody", func(t *testing.T) {
		_, err := ParseEmailTemplateJSON(`{"subject": "x", "body": ""}`)
		assert.Error(t, err)
	})
}
