package majors

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/models"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/store"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/validation"
)

func GetMajorsAPI(c *fiber.Ctx) error {
	list := dataStore.Majors()
	return c.JSON(fiber.Map{
		"majors": list,
		"count":  len(list),
	})
}

func GetMajorAPI(c *fiber.Ctx) error {
	m, ok := dataStore.Major(c.Params("id"))
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Major not found"})
	}
	return c.JSON(fiber.Map{"major": m})
}

func CreateMajorAPI(c *fiber.Ctx) error {
	var m models.Major
	if err := c.BodyParser(&m); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(m); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	created, err := dataStore.CreateMajor(m)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save major", "details": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Major created successfully",
		"major":   created,
	})
}

func UpdateMajorAPI(c *fiber.Ctx) error {
	var m models.Major
	if err := c.BodyParser(&m); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(m); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	updated, err := dataStore.UpdateMajor(c.Params("id"), m)
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Major not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update major"})
	}

	return c.JSON(fiber.Map{
		"message": "Major updated successfully",
		"major":   updated,
	})
}

func DeleteMajorAPI(c *fiber.Ctx) error {
	err := dataStore.DeleteMajor(c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Major not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete major"})
	}
	return c.JSON(fiber.Map{"message": "Major deleted successfully"})
}

func ImportMajorsAPI(c *fiber.Ctx) error {
	var list []models.Major
	if err := c.BodyParser(&list); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	for i, m := range list {
		if err := validation.Struct(m); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error(), "row": i + 1})
		}
	}

	created, err := dataStore.ImportMajors(list)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to import majors"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Majors imported successfully",
		"count":   len(created),
	})
}
