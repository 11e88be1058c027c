package controllers

import (
	"halaqa_go/services"

	"github.com/gofiber/fiber/v2"
)

type SettingsController struct {
	store *services.AttendanceStore
}

func NewSettingsController(store *services.AttendanceStore) *SettingsController {
	return &SettingsController{store: store}
}

type updateSettingsRequest struct {
	ClassName   *string `json:"className"`
	TeacherName *string `json:"teacherName"`
}

// GetSettings returns the circle identity.
func (sc *SettingsController) GetSettings(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"settings": sc.store.Settings()})
}

// UpdateSettings applies partial settings changes; blank values keep
// the previous text.
func (sc *SettingsController) UpdateSettings(c *fiber.Ctx) error {
	var req updateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	settings := sc.store.UpdateSettings(req.ClassName, req.TeacherName)
	return c.JSON(fiber.Map{
		"message":  "Settings updated",
		"settings": settings,
	})
}
