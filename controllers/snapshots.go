package controllers

import (
	"halaqa_go/models"
	"halaqa_go/services"

	"github.com/gofiber/fiber/v2"
)

type SnapshotController struct {
	store *services.AttendanceStore
}

func NewSnapshotController(store *services.AttendanceStore) *SnapshotController {
	return &SnapshotController{store: store}
}

// ExportSnapshot returns the full persisted state for backup.
func (sc *SnapshotController) ExportSnapshot(c *fiber.Ctx) error {
	return c.JSON(sc.store.Snapshot())
}

// ImportSnapshot replaces the full state from a backup.
func (sc *SnapshotController) ImportSnapshot(c *fiber.Ctx) error {
	var snapshot models.Snapshot
	if err := c.BodyParser(&snapshot); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid snapshot body"})
	}

	if err := sc.store.ImportSnapshot(&snapshot); err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Snapshot imported successfully"})
}
