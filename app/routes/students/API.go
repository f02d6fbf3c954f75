package students

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/models"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/store"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/validation"
)

func GetStudentsAPI(c *fiber.Ctx) error {
	list := dataStore.Students(c.Query("class_id"))
	if list == nil {
		list = []models.Student{}
	}
	return c.JSON(fiber.Map{
		"students": list,
		"count":    len(list),
	})
}

func GetStudentAPI(c *fiber.Ctx) error {
	st, ok := dataStore.Student(c.Params("id"))
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}
	return c.JSON(st)
}

func CreateStudentAPI(c *fiber.Ctx) error {
	var st models.Student
	if err := c.BodyParser(&st); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(st); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	created, err := dataStore.CreateStudent(st)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save student", "details": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Student created successfully",
		"student": created,
	})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	var st models.Student
	if err := c.BodyParser(&st); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(st); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	updated, err := dataStore.UpdateStudent(c.Params("id"), st)
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}

	return c.JSON(fiber.Map{
		"message": "Student updated successfully",
		"student": updated,
	})
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	err := dataStore.DeleteStudent(c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student"})
	}
	return c.JSON(fiber.Map{"message": "Student deleted successfully"})
}

func ImportStudentsAPI(c *fiber.Ctx) error {
	var list []models.Student
	if err := c.BodyParser(&list); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	for i, st := range list {
		if err := validation.Struct(st); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error(), "row": i + 1})
		}
	}

	created, err := dataStore.ImportStudents(list)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to import students"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Students imported successfully",
		"count":   len(created),
	})
}
