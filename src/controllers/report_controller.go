package controllers

import (
	"fmt"
	"time"

	"Backend-PlacementCell/src/services/reports"
	"Backend-PlacementCell/src/utils"

	"github.com/gofiber/fiber/v2"
)

const excelMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GetPlacementSummary godoc
// @Summary Placement summary
// @Description Totals and per-department placement counts
// @Tags reports
// @Produce json
// @Success 200 {object} reports.PlacementSummary
// @Router /reports/summary [get]
func GetPlacementSummary(c *fiber.Ctx) error {
	summary, err := reports.GatherPlacementSummary()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(summary)
}

// DownloadCompanyOffersExcel godoc
// @Summary Company-wise offers workbook
// @Description Published offers grouped by company, as an xlsx download
// @Tags reports
// @Produce application/octet-stream
// @Success 200 {file} binary
// @Router /reports/offers/company/excel [get]
func DownloadCompanyOffersExcel(c *fiber.Ctx) error {
	rows, err := reports.GatherOfferRows()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	f, err := reports.BuildCompanyOffersWorkbook(rows)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	name := fmt.Sprintf("company-offers-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, excelMIME)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(buf.Bytes())
}

// DownloadDepartmentOffersExcel godoc
// @Summary Department-wise offers workbook
// @Description One sheet per department, as an xlsx download
// @Tags reports
// @Produce application/octet-stream
// @Success 200 {file} binary
// @Router /reports/offers/department/excel [get]
func DownloadDepartmentOffersExcel(c *fiber.Ctx) error {
	byDept, err := reports.GatherDepartmentOfferRows()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	f, err := reports.BuildDepartmentOffersWorkbook(byDept)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	name := fmt.Sprintf("department-offers-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, excelMIME)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(buf.Bytes())
}

// DownloadOffersPDF godoc
// @Summary Offers report as PDF
// @Description Renders the published offers table to PDF via headless Chrome
// @Tags reports
// @Produce application/pdf
// @Success 200 {file} binary
// @Router /reports/offers/pdf [get]
func DownloadOffersPDF(c *fiber.Ctx) error {
	rows, err := reports.GatherOfferRows()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	html, err := reports.RenderOffersHTML(rows)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	pdf, err := reports.HTMLToPDF(c.UserContext(), html)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	name := fmt.Sprintf("offers-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(pdf)
}
