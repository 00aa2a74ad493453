package profiles

import (
	"testing"

	"Backend-PlacementCell/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func sampleProfile() *models.StudentProfile {
	return &models.StudentProfile{
		StudentID: primitive.NewObjectID(),
		Education: []models.ProfileItem{
			{ID: primitive.NewObjectID(), Title: "B.Tech CSE"},
			{ID: primitive.NewObjectID(), Title: "Higher Secondary"},
		},
		Experience: []models.ProfileItem{
			{ID: primitive.NewObjectID(), Title: "Summer Intern"},
		},
	}
}

func TestVerifyItem(t *testing.T) {
	t.Run("FlipsOnlyTheTargetItem", func(t *testing.T) {
		p := sampleProfile()
		target := p.Education[0].ID

		err := VerifyItem(p, models.SectionEducation, target)
		assert.NoError(t, err)
		assert.True(t, p.Education[0].Verified)
		assert.False(t, p.Education[1].Verified)
		assert.False(t, p.Experience[0].Verified)
	})

	t.Run("UnknownSection", func(t *testing.T) {
		p := sampleProfile()
		err := VerifyItem(p, "hobbies", p.Education[0].ID)
		assert.ErrorIs(t, err, ErrUnknownSection)
	})

	t.Run("UnknownItemID", func(t *testing.T) {
		p := sampleProfile()
		err := VerifyItem(p, models.SectionEducation, primitive.NewObjectID())
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestNormalizeItems(t *testing.T) {
	t.Run("AssignsIDsToNewItems", func(t *testing.T) {
		items := NormalizeItems([]models.ProfileItem{{Title: "New Cert"}})
		assert.False(t, items[0].ID.IsZero())
	})

	t.Run("EditResetsVerification", func(t *testing.T) {
		id := primitive.NewObjectID()
		items := NormalizeItems([]models.ProfileItem{
			{ID: id, Title: "Edited Cert", Verified: true},
		})
		assert.Equal(t, id, items[0].ID)
		assert.False(t, items[0].Verified)
	})
}
