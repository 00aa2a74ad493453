package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderApprovalEmail(t *testing.T) {
	t.Run("Approved", func(t *testing.T) {
		html, err := RenderApprovalEmail(ApprovalEmailData{
			StudentName:   "Priya Sharma",
			Approved:      true,
			DashboardLink: "http://localhost:9000/student/dashboard",
		})
		require.NoError(t, err)
		assert.Contains(t, html, "Priya Sharma")
		assert.Contains(t, html, "approved")
		assert.NotContains(t, html, "rejected")
	})

	t.Run("RejectedWithReason", func(t *testing.T) {
		html, err := RenderApprovalEmail(ApprovalEmailData{
			StudentName: "Priya Sharma",
			Approved:    false,
			Reason:      "CGPA document missing",
		})
		require.NoError(t, err)
		assert.Contains(t, html, "rejected")
		assert.Contains(t, html, "CGPA document missing")
	})
}

func TestRenderStatusUpdatedEmail(t *testing.T) {
	html, err := RenderStatusUpdatedEmail(StatusUpdatedEmailData{
		StudentName: "Arun Kumar",
		JobTitle:    "Backend Engineer",
		CompanyName: "Acme Corp",
		Status:      "Interview",
		Remarks:     "Shortlisted from screening",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "Backend Engineer")
	assert.Contains(t, html, "Acme Corp")
	assert.Contains(t, html, "Interview")
	assert.Contains(t, html, "Shortlisted from screening")
}

func TestRenderStatusUpdatedEmailEscapesHTML(t *testing.T) {
	html, err := RenderStatusUpdatedEmail(StatusUpdatedEmailData{
		StudentName: "<script>alert(1)</script>",
		JobTitle:    "Backend Engineer",
		Status:      "Screening",
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestRenderFinalResultEmail(t *testing.T) {
	selected, err := RenderFinalResultEmail(FinalResultEmailData{
		StudentName: "Arun Kumar",
		JobTitle:    "Backend Engineer",
		CompanyName: "Acme Corp",
		Selected:    true,
	})
	require.NoError(t, err)
	assert.Contains(t, selected, "Congratulations")

	rejected, err := RenderFinalResultEmail(FinalResultEmailData{
		StudentName: "Arun Kumar",
		JobTitle:    "Backend Engineer",
		CompanyName: "Acme Corp",
		Selected:    false,
	})
	require.NoError(t, err)
	assert.Contains(t, rejected, "not selected")
}

func TestRenderRoundCreatedEmail(t *testing.T) {
	html, err := RenderRoundCreatedEmail(RoundCreatedEmailData{
		StudentName: "Arun Kumar",
		RoundName:   "Technical Interview",
		JobTitle:    "Backend Engineer",
		CompanyName: "Acme Corp",
		DetailLink:  "http://localhost:9000/student/drives/abc",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "Technical Interview")
	assert.Contains(t, html, "http://localhost:9000/student/drives/abc")
}
