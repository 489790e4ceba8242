package controllers

import (
	"github.com/gofiber/fiber/v2"
)

func GetCategories(c *fiber.Ctx) error {
	session := CurrentSession(c)
	if session == nil {
		return nil
	}

	return c.Status(200).JSON(session.Store.Snapshot().Categories)
}
