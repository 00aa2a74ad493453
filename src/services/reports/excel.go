package reports

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"
)

// BuildCompanyOffersWorkbook renders the offers-by-company report: one
// summary sheet plus a flat row listing.
func BuildCompanyOffersWorkbook(rows []OfferRow) (*excelize.File, error) {
	f := excelize.NewFile()

	summarySheet := "Summary"
	offersSheet := "Offers"
	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(offersSheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	// Summary: offers per company.
	byCompany := map[string]int{}
	for _, r := range rows {
		byCompany[r.CompanyName]++
	}
	companies := make([]string, 0, len(byCompany))
	for name := range byCompany {
		companies = append(companies, name)
	}
	sort.Strings(companies)

	f.SetColWidth(summarySheet, "A", "A", 35)
	f.SetColWidth(summarySheet, "B", "B", 12)
	f.SetCellValue(summarySheet, "A1", "Company")
	f.SetCellValue(summarySheet, "B1", "Offers")
	f.SetCellStyle(summarySheet, "A1", "B1", headerStyle)
	for i, name := range companies {
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", i+2), name)
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", i+2), byCompany[name])
	}

	// Offers: one row per selected student.
	f.SetColWidth(offersSheet, "A", "B", 30)
	f.SetColWidth(offersSheet, "C", "D", 20)
	f.SetColWidth(offersSheet, "E", "E", 12)
	headers := []string{"Company", "Job Role", "Student Code", "Student Name", "CTC (LPA)"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(offersSheet, cell, h)
	}
	f.SetCellStyle(offersSheet, "A1", "E1", headerStyle)

	for i, r := range rows {
		rowNum := i + 2
		f.SetCellValue(offersSheet, fmt.Sprintf("A%d", rowNum), r.CompanyName)
		f.SetCellValue(offersSheet, fmt.Sprintf("B%d", rowNum), r.JobTitle)
		f.SetCellValue(offersSheet, fmt.Sprintf("C%d", rowNum), r.StudentCode)
		f.SetCellValue(offersSheet, fmt.Sprintf("D%d", rowNum), r.StudentName)
		f.SetCellValue(offersSheet, fmt.Sprintf("E%d", rowNum), r.CTC)
	}

	return f, nil
}

// BuildDepartmentOffersWorkbook renders the offers-by-department report,
// one sheet per department.
func BuildDepartmentOffersWorkbook(byDept map[string][]OfferRow) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(byDept))
	for name := range byDept {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		sheet := name
		if i == 0 {
			f.SetSheetName("Sheet1", sheet)
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, err
			}
		}

		f.SetColWidth(sheet, "A", "B", 30)
		f.SetColWidth(sheet, "C", "D", 20)
		headers := []string{"Company", "Job Role", "Student Code", "Student Name"}
		for j, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(j+1, 1)
			f.SetCellValue(sheet, cell, h)
		}
		f.SetCellStyle(sheet, "A1", "D1", headerStyle)

		for j, r := range byDept[name] {
			rowNum := j + 2
			f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), r.CompanyName)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), r.JobTitle)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), r.StudentCode)
			f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), r.StudentName)
		}
	}

	if len(names) == 0 {
		f.SetSheetName("Sheet1", "No Offers")
	}
	return f, nil
}
