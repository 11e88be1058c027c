package controllers

import (
	"strconv"

	"halaqa_go/services"

	"github.com/gofiber/fiber/v2"
)

type StudentController struct {
	store *services.AttendanceStore
}

func NewStudentController(store *services.AttendanceStore) *StudentController {
	return &StudentController{store: store}
}

type createStudentRequest struct {
	Name string `json:"name" validate:"required"`
}

type renameStudentRequest struct {
	Name string `json:"name" validate:"required"`
}

type setSuspensionRequest struct {
	StartDate  string  `json:"start_date" validate:"required"`
	EndDate    *string `json:"end_date"`
	StopSave   bool    `json:"stop_save"`
	StopReview bool    `json:"stop_review"`
}

// GetStudents returns the roster in display order.
func (sc *StudentController) GetStudents(c *fiber.Ctx) error {
	students := sc.store.Students()
	return c.JSON(fiber.Map{
		"students": students,
		"total":    len(students),
	})
}

// CreateStudent adds a student to the roster.
func (sc *StudentController) CreateStudent(c *fiber.Ctx) error {
	var req createStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	student, err := sc.store.AddStudent(req.Name)
	if err != nil {
		return storeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Student added successfully",
		"student": student,
	})
}

// UpdateStudent renames a student.
func (sc *StudentController) UpdateStudent(c *fiber.Ctx) error {
	id, err := parseStudentID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student ID"})
	}

	var req renameStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := sc.store.RenameStudent(id, req.Name); err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Student updated successfully"})
}

// DeleteStudent removes a student and purges their daily entries.
func (sc *StudentController) DeleteStudent(c *fiber.Ctx) error {
	id, err := parseStudentID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student ID"})
	}

	if err := sc.store.DeleteStudent(id); err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Student deleted successfully"})
}

// SetSuspension replaces a student's suspension window.
func (sc *StudentController) SetSuspension(c *fiber.Ctx) error {
	id, err := parseStudentID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student ID"})
	}

	var req setSuspensionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := sc.store.SetSuspension(id, req.StartDate, req.EndDate, req.StopSave, req.StopReview); err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Suspension set successfully"})
}

// ClearSuspension removes a student's suspension.
func (sc *StudentController) ClearSuspension(c *fiber.Ctx) error {
	id, err := parseStudentID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student ID"})
	}

	if err := sc.store.ClearSuspension(id); err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Suspension cleared successfully"})
}

func parseStudentID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
