package routes

import "github.com/gofiber/fiber/v2"

// NotFoundRoute catches everything no other route claimed.
func NotFoundRoute(app *fiber.App) {
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "endpoint not found",
			"code":  "NOT_FOUND",
		})
	})
}
