package middleware

import (
	"testing"

	"Backend-PlacementCell/src/models"

	"github.com/stretchr/testify/assert"
)

func TestRoleAllowed(t *testing.T) {
	t.Run("AllowsListedRole", func(t *testing.T) {
		assert.True(t, RoleAllowed(models.RoleTPO, models.RoleTPO, models.RoleHOD))
		assert.True(t, RoleAllowed(models.RoleHOD, models.RoleTPO, models.RoleHOD))
	})

	t.Run("DeniesUnlistedRole", func(t *testing.T) {
		assert.False(t, RoleAllowed(models.RoleStudent, models.RoleTPO, models.RoleHOD))
		assert.False(t, RoleAllowed("", models.RoleTPO))
	})

	t.Run("AdminPassesEveryGate", func(t *testing.T) {
		assert.True(t, RoleAllowed(models.RoleAdmin, models.RoleTPO))
		assert.True(t, RoleAllowed(models.RoleAdmin))
	})

	t.Run("EmptyAllowListDeniesNonAdmin", func(t *testing.T) {
		assert.False(t, RoleAllowed(models.RoleTPO))
	})
}
