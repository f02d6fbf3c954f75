package classes

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/models"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/store"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/validation"
)

func GetClassesAPI(c *fiber.Ctx) error {
	list := dataStore.Classes()
	return c.JSON(fiber.Map{
		"classes": list,
		"count":   len(list),
	})
}

func GetClassAPI(c *fiber.Ctx) error {
	cls, ok := dataStore.Class(c.Params("id"))
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
	}
	return c.JSON(cls)
}

// GetClassSubjectsAPI returns the class's curriculum via the implicit
// major-membership rule.
func GetClassSubjectsAPI(c *fiber.Ctx) error {
	if _, ok := dataStore.Class(c.Params("id")); !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
	}
	subjects := dataStore.SubjectsForClass(c.Params("id"))
	if subjects == nil {
		subjects = []models.Subject{}
	}
	return c.JSON(fiber.Map{"subjects": subjects, "count": len(subjects)})
}

func CreateClassAPI(c *fiber.Ctx) error {
	var cls models.ClassEntity
	if err := c.BodyParser(&cls); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(cls); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	created, err := dataStore.CreateClass(cls)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save class", "details": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Class created successfully",
		"class":   created,
	})
}

func UpdateClassAPI(c *fiber.Ctx) error {
	var cls models.ClassEntity
	if err := c.BodyParser(&cls); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(cls); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	updated, err := dataStore.UpdateClass(c.Params("id"), cls)
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update class"})
	}

	return c.JSON(fiber.Map{
		"message": "Class updated successfully",
		"class":   updated,
	})
}

func DeleteClassAPI(c *fiber.Ctx) error {
	err := dataStore.DeleteClass(c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete class"})
	}
	return c.JSON(fiber.Map{"message": "Class deleted successfully"})
}

func ImportClassesAPI(c *fiber.Ctx) error {
	var list []models.ClassEntity
	if err := c.BodyParser(&list); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	for i, cl := range list {
		if err := validation.Struct(cl); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error(), "row": i + 1})
		}
	}

	created, err := dataStore.ImportClasses(list)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to import classes"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Classes imported successfully",
		"count":   len(created),
	})
}
