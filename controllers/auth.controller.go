package controllers

import (
	"github.com/gofiber/fiber/v2"

	"snapgram/services"
)

func Signup(content *services.Content) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in services.SignupInput
		if err := c.BodyParser(&in); err != nil {
			return badJSON(c)
		}
		payload, err := content.Signup(in)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(payload)
	}
}

func Login(content *services.Content) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in services.LoginInput
		if err := c.BodyParser(&in); err != nil {
			return badJSON(c)
		}
		payload, err := content.Login(in)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(payload)
	}
}
