package teachers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/models"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/store"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/validation"
)

func GetTeachersAPI(c *fiber.Ctx) error {
	list := dataStore.Teachers()
	return c.JSON(fiber.Map{
		"teachers": list,
		"count":    len(list),
	})
}

func GetTeacherAPI(c *fiber.Ctx) error {
	t, ok := dataStore.Teacher(c.Params("id"))
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Teacher not found"})
	}
	return c.JSON(t)
}

func CreateTeacherAPI(c *fiber.Ctx) error {
	var t models.Teacher
	if err := c.BodyParser(&t); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(t); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	created, err := dataStore.CreateTeacher(t)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save teacher", "details": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Teacher created successfully",
		"teacher": created,
	})
}

func UpdateTeacherAPI(c *fiber.Ctx) error {
	var t models.Teacher
	if err := c.BodyParser(&t); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(t); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	updated, err := dataStore.UpdateTeacher(c.Params("id"), t)
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Teacher not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update teacher"})
	}

	return c.JSON(fiber.Map{
		"message": "Teacher updated successfully",
		"teacher": updated,
	})
}

func DeleteTeacherAPI(c *fiber.Ctx) error {
	err := dataStore.DeleteTeacher(c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Teacher not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete teacher"})
	}
	return c.JSON(fiber.Map{"message": "Teacher deleted successfully"})
}

// ImportTeachersAPI bulk-creates teachers from a JSON array (spreadsheet
// import flows send everything in one request).
func ImportTeachersAPI(c *fiber.Ctx) error {
	var list []models.Teacher
	if err := c.BodyParser(&list); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	for i, t := range list {
		if err := validation.Struct(t); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error(), "row": i + 1})
		}
	}

	created, err := dataStore.ImportTeachers(list)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to import teachers"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Teachers imported successfully",
		"count":   len(created),
	})
}
