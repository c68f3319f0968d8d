package controllers

import (
	"github.com/gofiber/fiber/v2"

	"snapgram/middleware"
	"snapgram/services"
)

func LikePost(content *services.Content) fiber.Handler {
	return func(c *fiber.Ctx) error {
		postID, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		like, err := content.LikePost(middleware.Identity(c), postID)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(like)
	}
}

func UnlikePost(content *services.Content) fiber.Handler {
	return func(c *fiber.Ctx) error {
		postID, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		ok, err := content.UnlikePost(middleware.Identity(c), postID)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"unliked": ok})
	}
}

func RatePost(content *services.Content) fiber.Handler {
	return func(c *fiber.Ctx) error {
		postID, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		var body struct {
			Value int `json:"value"`
		}
		if err := c.BodyParser(&body); err != nil {
			return badJSON(c)
		}
		rating, err := content.RatePost(middleware.Identity(c), postID, body.Value)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(rating)
	}
}
