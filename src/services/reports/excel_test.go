package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []OfferRow {
	return []OfferRow{
		{CompanyName: "Acme Corp", JobTitle: "Backend Engineer", StudentCode: "CS2201", StudentName: "Priya Sharma", CTC: 12},
		{CompanyName: "Acme Corp", JobTitle: "Backend Engineer", StudentCode: "CS2202", StudentName: "Arun Kumar", CTC: 12},
		{CompanyName: "Globex", JobTitle: "Data Analyst", StudentCode: "EC2210", StudentName: "Meera Nair", CTC: 9.5},
	}
}

func TestBuildCompanyOffersWorkbook(t *testing.T) {
	f, err := BuildCompanyOffersWorkbook(sampleRows())
	require.NoError(t, err)
	defer f.Close()

	t.Run("SummaryCountsOffersPerCompany", func(t *testing.T) {
		acme, err := f.GetCellValue("Summary", "B2") // companies sorted: Acme first
		require.NoError(t, err)
		assert.Equal(t, "2", acme)

		globex, err := f.GetCellValue("Summary", "B3")
		require.NoError(t, err)
		assert.Equal(t, "1", globex)
	})

	t.Run("OffersSheetListsEveryRow", func(t *testing.T) {
		rows, err := f.GetRows("Offers")
		require.NoError(t, err)
		assert.Len(t, rows, 4) // header + 3 offers

		assert.Equal(t, []string{"Company", "Job Role", "Student Code", "Student Name", "CTC (LPA)"}, rows[0])
		assert.Equal(t, "CS2201", rows[1][2])
		assert.Equal(t, "Meera Nair", rows[3][3])
	})
}

func TestBuildDepartmentOffersWorkbook(t *testing.T) {
	byDept := map[string][]OfferRow{
		"Computer Science": sampleRows()[:2],
		"Electronics":      sampleRows()[2:],
	}

	f, err := BuildDepartmentOffersWorkbook(byDept)
	require.NoError(t, err)
	defer f.Close()

	t.Run("OneSheetPerDepartment", func(t *testing.T) {
		assert.ElementsMatch(t, []string{"Computer Science", "Electronics"}, f.GetSheetList())
	})

	t.Run("RowsLandOnTheRightSheet", func(t *testing.T) {
		rows, err := f.GetRows("Electronics")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "EC2210", rows[1][2])
	})
}

func TestBuildDepartmentOffersWorkbookEmpty(t *testing.T) {
	f, err := BuildDepartmentOffersWorkbook(map[string][]OfferRow{})
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"No Offers"}, f.GetSheetList())
}

func TestRenderOffersHTML(t *testing.T) {
	html, err := RenderOffersHTML(sampleRows())
	require.NoError(t, err)
	assert.Contains(t, html, "Acme Corp")
	assert.Contains(t, html, "CS2202")
	assert.Contains(t, html, "Placement Offers by Company")
}
