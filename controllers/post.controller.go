package controllers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"snapgram/middleware"
	"snapgram/services"
)

func GetPosts(content *services.Content) fiber.Handler {
	return func(c *fiber.Ctx) error {
		posts, err := content.Posts()
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(posts)
	}
}

func GetPostByID(content *services.Content) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		post, err := content.Post(id)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(post)
	}
}

func CreatePost(content *services.Content) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in services.CreatePostInput
		if err := c.BodyParser(&in); err != nil {
			return badJSON(c)
		}
		post, err := content.CreatePost(middleware.Identity(c), in)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(post)
	}
}

func UpdatePost(content *services.Content) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		var body struct {
			Caption json.RawMessage `json:"caption"`
		}
		if err := c.BodyParser(&body); err != nil {
			return badJSON(c)
		}
		// An absent caption key means "leave it alone"; an explicit null
		// clears it.
		var in services.UpdatePostInput
		if len(body.Caption) > 0 {
			in.HasCaption = true
			if string(body.Caption) != "null" {
				var caption string
				if err := json.Unmarshal(body.Caption, &caption); err != nil {
					return badJSON(c)
				}
				in.Caption = &caption
			}
		}
		post, err := content.UpdatePost(middleware.Identity(c), id, in)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(post)
	}
}

func DeletePost(content *services.Content) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		ok, err := content.DeletePost(middleware.Identity(c), id)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"deleted": ok})
	}
}

func RemovePost(content *services.Content) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		ok, err := content.RemovePost(middleware.Identity(c), id)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"removed": ok})
	}
}
