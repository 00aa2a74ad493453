package routes

import (
	"net/http/httptest"
	"testing"

	"Backend-PlacementCell/src/models"
	"Backend-PlacementCell/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requests use a malformed id so authorized callers stop at the controller's
// 400 id check instead of reaching the database. Anything other than 401/403
// means the role gate let the request through.

func bearerFor(t *testing.T, role string) string {
	t.Helper()
	token, err := utils.GenerateJWT("user-1", role+"@campus.edu", role, "64a000000000000000000001")
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRecruitmentRouteRoleGates(t *testing.T) {
	app := fiber.New()
	recruitmentRoutes(app)

	cases := []struct {
		name   string
		method string
		path   string
	}{
		{"CreateRound", "POST", "/recruitments/"},
		{"UpdateCandidateStatus", "PUT", "/recruitments/notanid/candidates"},
		{"PublishResults", "POST", "/recruitments/job/notanid/publish"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, role := range []string{models.RoleTPO, models.RoleHOD} {
				req := httptest.NewRequest(tc.method, tc.path, nil)
				req.Header.Set("Authorization", bearerFor(t, role))
				resp, err := app.Test(req)
				require.NoError(t, err)
				assert.NotEqual(t, fiber.StatusForbidden, resp.StatusCode, "%s should be allowed", role)
				assert.NotEqual(t, fiber.StatusUnauthorized, resp.StatusCode, "%s should be allowed", role)
			}

			req := httptest.NewRequest(tc.method, tc.path, nil)
			req.Header.Set("Authorization", bearerFor(t, models.RoleStudent))
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusForbidden, resp.StatusCode, "students must be refused")
		})
	}
}

func TestApplicationRouteRoleGates(t *testing.T) {
	app := fiber.New()
	applicationRoutes(app)

	cases := []struct {
		name   string
		method string
		path   string
	}{
		{"UpdateStatus", "PUT", "/applications/notanid/status"},
		{"UploadOfferLetter", "POST", "/applications/notanid/offer-letter"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, role := range []string{models.RoleTPO, models.RoleHOD} {
				req := httptest.NewRequest(tc.method, tc.path, nil)
				req.Header.Set("Authorization", bearerFor(t, role))
				resp, err := app.Test(req)
				require.NoError(t, err)
				assert.NotEqual(t, fiber.StatusForbidden, resp.StatusCode, "%s should be allowed", role)
			}

			req := httptest.NewRequest(tc.method, tc.path, nil)
			req.Header.Set("Authorization", bearerFor(t, models.RoleStudent))
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusForbidden, resp.StatusCode, "students must be refused")
		})
	}
}
