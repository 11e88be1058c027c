package controllers

import (
	"halaqa_go/services"
	"halaqa_go/utils"

	"github.com/gofiber/fiber/v2"
)

type ReportController struct {
	store  *services.AttendanceStore
	sharer *services.ReportSharer
}

func NewReportController(store *services.AttendanceStore, sharer *services.ReportSharer) *ReportController {
	return &ReportController{store: store, sharer: sharer}
}

// GetReport renders the shareable text report for one day.
func (rc *ReportController) GetReport(c *fiber.Ctx) error {
	dateKey := c.Params("date")
	day, err := utils.ParseDateKey(dateKey)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date"})
	}

	report := services.GenerateReport(day, rc.store.DayRecord(dateKey), rc.store.Students(), rc.store.Settings())
	return c.JSON(fiber.Map{
		"date":   dateKey,
		"report": report,
	})
}

// ShareReport pushes the day's report to the configured LINE recipient.
func (rc *ReportController) ShareReport(c *fiber.Ctx) error {
	dateKey := c.Params("date")
	day, err := utils.ParseDateKey(dateKey)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date"})
	}

	if !rc.sharer.Enabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Report sharing is not configured"})
	}

	report := services.GenerateReport(day, rc.store.DayRecord(dateKey), rc.store.Students(), rc.store.Settings())
	if err := rc.sharer.Share(report); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to share report"})
	}

	return c.JSON(fiber.Map{"message": "Report shared successfully"})
}
