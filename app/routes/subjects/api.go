package subjects

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/models"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/store"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/validation"
)

// GetSubjectsAPI lists subjects, optionally narrowed to one major or to a
// class's implicit curriculum.
func GetSubjectsAPI(c *fiber.Ctx) error {
	if classID := c.Query("class_id"); classID != "" {
		list := dataStore.SubjectsForClass(classID)
		if list == nil {
			list = []models.Subject{}
		}
		return c.JSON(fiber.Map{"subjects": list, "count": len(list)})
	}

	list := dataStore.Subjects(c.Query("major_id"))
	if list == nil {
		list = []models.Subject{}
	}
	return c.JSON(fiber.Map{"subjects": list, "count": len(list)})
}

func GetSubjectAPI(c *fiber.Ctx) error {
	sub, ok := dataStore.Subject(c.Params("id"))
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Subject not found"})
	}
	return c.JSON(sub)
}

func CreateSubjectAPI(c *fiber.Ctx) error {
	var sub models.Subject
	if err := c.BodyParser(&sub); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(sub); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	created, err := dataStore.CreateSubject(sub)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save subject", "details": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Subject created successfully",
		"subject": created,
	})
}

func UpdateSubjectAPI(c *fiber.Ctx) error {
	var sub models.Subject
	if err := c.BodyParser(&sub); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(sub); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	updated, err := dataStore.UpdateSubject(c.Params("id"), sub)
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Subject not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update subject"})
	}

	return c.JSON(fiber.Map{
		"message": "Subject updated successfully",
		"subject": updated,
	})
}

func DeleteSubjectAPI(c *fiber.Ctx) error {
	err := dataStore.DeleteSubject(c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Subject not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete subject"})
	}
	return c.JSON(fiber.Map{"message": "Subject deleted successfully"})
}

func ImportSubjectsAPI(c *fiber.Ctx) error {
	var list []models.Subject
	if err := c.BodyParser(&list); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	for i, sub := range list {
		if err := validation.Struct(sub); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error(), "row": i + 1})
		}
	}

	created, err := dataStore.ImportSubjects(list)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to import subjects"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Subjects imported successfully",
		"count":   len(created),
	})
}
