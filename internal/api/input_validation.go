package api

import (
	"encoding/json"
	"strings"

	"github.com/danverav/exercise-tracker/internal/services"
	"github.com/gofiber/fiber/v2"
)

// parseExercisePayload accepts both JSON and form-encoded bodies. Duration
// is kept raw so that a JSON number and a quoted string coerce the same
// way downstream.
func parseExercisePayload(c *fiber.Ctx) (services.ExerciseInput, error) {
	contentType := strings.ToLower(c.Get("Content-Type"))

	if strings.Contains(contentType, "application/json") {
		raw := struct {
			Description string          `json:"description"`
			Duration    json.RawMessage `json:"duration"`
			Date        string          `json:"date"`
		}{}
		if err := json.Unmarshal(c.Body(), &raw); err != nil {
			return services.ExerciseInput{}, err
		}
		return services.ExerciseInput{
			Description: raw.Description,
			Duration:    strings.Trim(strings.TrimSpace(string(raw.Duration)), `"`),
			Date:        raw.Date,
		}, nil
	}

	return services.ExerciseInput{
		Description: c.FormValue("description"),
		Duration:    c.FormValue("duration"),
		Date:        c.FormValue("date"),
	}, nil
}
