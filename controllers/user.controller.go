package controllers

import (
	"github.com/gofiber/fiber/v2"

	"snapgram/middleware"
	"snapgram/services"
)

func Me(content *services.Content) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := content.Me(middleware.Identity(c))
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(user)
	}
}

func GetUsers(content *services.Content) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := content.Users()
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(users)
	}
}

func GetUser(content *services.Content) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		user, err := content.User(id)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(user)
	}
}
