package controllers

import (
	"time"

	"halaqa_go/models"
	"halaqa_go/services"
	"halaqa_go/utils"

	"github.com/gofiber/fiber/v2"
)

type AttendanceController struct {
	store *services.AttendanceStore
}

func NewAttendanceController(store *services.AttendanceStore) *AttendanceController {
	return &AttendanceController{store: store}
}

type setStatusRequest struct {
	StudentID int64  `json:"student_id" validate:"required"`
	Status    string `json:"status" validate:"required"`
	Value     bool   `json:"value"`
}

// GetDay returns one day's record together with its display dates.
func (ac *AttendanceController) GetDay(c *fiber.Ctx) error {
	dateKey := c.Params("date")
	day, err := utils.ParseDateKey(dateKey)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date"})
	}

	hijri := utils.GregorianToHijri(day)
	return c.JSON(fiber.Map{
		"date":       dateKey,
		"weekday":    utils.ArabicWeekdays[int(day.Weekday())],
		"hijri_date": hijri.Format(),
		"editable":   services.CanEditDay(dateKey, time.Now()),
		"record":     ac.store.DayRecord(dateKey),
	})
}

// SetStatus toggles one attendance flag for one student on one day.
func (ac *AttendanceController) SetStatus(c *fiber.Ctx) error {
	dateKey := c.Params("date")
	if _, err := utils.ParseDateKey(dateKey); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date"})
	}

	var req setStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if !services.CanEditDay(dateKey, time.Now()) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Future days cannot be edited"})
	}

	if err := ac.store.SetStatus(dateKey, req.StudentID, models.Status(req.Status), req.Value); err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Status updated successfully",
		"record":  ac.store.DayRecord(dateKey),
	})
}
