package api

import (
	"time"

	"github.com/danverav/exercise-tracker/internal/db"
	"github.com/danverav/exercise-tracker/internal/services"
)

type Handler struct {
	repositories    *db.Repositories
	userService     *services.UserService
	exerciseService *services.ExerciseService
	location        *time.Location
}
