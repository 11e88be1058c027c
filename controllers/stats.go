package controllers

import (
	"fmt"
	"time"

	"halaqa_go/services"

	"github.com/gofiber/fiber/v2"
)

type StatsController struct {
	store *services.AttendanceStore
}

func NewStatsController(store *services.AttendanceStore) *StatsController {
	return &StatsController{store: store}
}

// GetStats aggregates counters for a named range (default all).
func (sc *StatsController) GetStats(c *fiber.Ctx) error {
	rangeName, err := services.ParseRange(c.Query("range", string(services.RangeAll)))
	if err != nil {
		return storeError(c, err)
	}

	filtered := services.SelectRange(sc.store.Records(), rangeName, time.Now())
	rows := services.AggregateRows(filtered, sc.store.Students())

	return c.JSON(fiber.Map{
		"range": rangeName,
		"days":  len(filtered),
		"stats": rows,
	})
}

// ExportStats renders the same aggregation as an .xlsx download.
func (sc *StatsController) ExportStats(c *fiber.Ctx) error {
	rangeName, err := services.ParseRange(c.Query("range", string(services.RangeAll)))
	if err != nil {
		return storeError(c, err)
	}

	filtered := services.SelectRange(sc.store.Records(), rangeName, time.Now())
	rows := services.AggregateRows(filtered, sc.store.Students())

	workbook, err := services.BuildStatsWorkbook(rows, rangeName, sc.store.Settings())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build workbook"})
	}

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to encode workbook"})
	}

	filename := fmt.Sprintf("halaqa-stats-%s-%s.xlsx", rangeName, time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(buf.Bytes())
}
