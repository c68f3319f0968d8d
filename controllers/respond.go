package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/satori/go.uuid"

	"snapgram/apperr"
)

var kindStatus = map[apperr.Kind]int{
	apperr.Unauthenticated:    fiber.StatusUnauthorized,
	apperr.Unauthorized:       fiber.StatusForbidden,
	apperr.NotFound:           fiber.StatusNotFound,
	apperr.InvalidArgument:    fiber.StatusBadRequest,
	apperr.DuplicateEmail:     fiber.StatusConflict,
	apperr.DuplicateUsername:  fiber.StatusConflict,
	apperr.InvalidCredentials: fiber.StatusUnauthorized,
	apperr.InvalidToken:       fiber.StatusUnauthorized,
	apperr.Internal:           fiber.StatusInternalServerError,
}

// fail renders any service error as {error, code}; messages never carry
// internal detail beyond what the service chose to expose.
func fail(c *fiber.Ctx, err error) error {
	kind := apperr.KindOf(err)
	message := "internal server error"
	var ae *apperr.Error
	if errors.As(err, &ae) && kind != apperr.Internal {
		message = ae.Message
	}
	status, ok := kindStatus[kind]
	if !ok {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{
		"error": message,
		"code":  kind,
	})
}

func badJSON(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "cannot parse JSON",
		"code":  apperr.InvalidArgument,
	})
}

func paramID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.FromString(c.Params(name))
	if err != nil {
		return uuid.Nil, apperr.New(apperr.InvalidArgument, name+" must be a valid id")
	}
	return id, nil
}
