package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	api := app.Group("/api")

	users := api.Group("/users")
	users.Post("", handler.CreateUser)
	users.Get("", handler.ListUsers)
	users.Post("/:id/exercises", handler.AddExercise)
	users.Get("/:id/logs", handler.GetLog)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
