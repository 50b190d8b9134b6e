package api

import (
	"errors"

	"github.com/danverav/exercise-tracker/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) AddExercise(c *fiber.Ctx) error {
	input, err := parseExercisePayload(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	result, err := handler.exerciseService.AddExercise(c.Params("id"), input)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return apiError(c, fiber.StatusNotFound, "user not found")
	case errors.Is(err, services.ErrDescriptionRequired):
		return apiError(c, fiber.StatusBadRequest, "description is required")
	case errors.Is(err, services.ErrInvalidDuration):
		return apiError(c, fiber.StatusBadRequest, "invalid duration")
	case errors.Is(err, services.ErrInvalidDate):
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to add exercise")
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

func (handler *Handler) GetLog(c *fiber.Ctx) error {
	query, err := services.ParseLogQuery(c.Query("from"), c.Query("to"), c.Query("limit"), handler.location)
	switch {
	case errors.Is(err, services.ErrInvalidFromDate):
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	case errors.Is(err, services.ErrInvalidToDate):
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	case errors.Is(err, services.ErrInvalidLimit):
		return apiError(c, fiber.StatusBadRequest, "invalid limit")
	case err != nil:
		return apiError(c, fiber.StatusBadRequest, "invalid query")
	}

	logView, err := handler.exerciseService.GetLog(c.Params("id"), query)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return apiError(c, fiber.StatusNotFound, "user not found")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch log")
	}

	return c.JSON(logView)
}
