package controllers

import (
	"github.com/gofiber/fiber/v2"
	uuid "github.com/satori/go.uuid"

	"snapgram/middleware"
	"snapgram/services"
)

func GetComments(content *services.Content) fiber.Handler {
	return func(c *fiber.Ctx) error {
		postID, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		comments, err := content.Comments(postID)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(comments)
	}
}

func CreateComment(content *services.Content) fiber.Handler {
	return func(c *fiber.Ctx) error {
		postID, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		var body struct {
			Content  string     `json:"content"`
			ParentID *uuid.UUID `json:"parent_id"`
		}
		if err := c.BodyParser(&body); err != nil {
			return badJSON(c)
		}
		comment, err := content.CreateComment(middleware.Identity(c), services.CreateCommentInput{
			PostID:   postID,
			Content:  body.Content,
			ParentID: body.ParentID,
		})
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(comment)
	}
}

func DeleteComment(content *services.Content) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		ok, err := content.DeleteComment(middleware.Identity(c), id)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"deleted": ok})
	}
}

func RemoveComment(content *services.Content) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		ok, err := content.RemoveComment(middleware.Identity(c), id)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"removed": ok})
	}
}
