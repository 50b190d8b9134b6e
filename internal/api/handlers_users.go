package api

import (
	"errors"

	"github.com/danverav/exercise-tracker/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) CreateUser(c *fiber.Ctx) error {
	payload := userPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	user, err := handler.userService.CreateUser(payload.Username)
	switch {
	case errors.Is(err, services.ErrUsernameRequired):
		return apiError(c, fiber.StatusBadRequest, "username is required")
	case errors.Is(err, services.ErrUsernameTaken):
		return apiError(c, fiber.StatusConflict, "username already taken")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to create user")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"username": user.Username,
		"id":       user.ID,
	})
}

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := handler.userService.ListUsers()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list users")
	}
	return c.JSON(users)
}
