package api

import (
	"time"

	"github.com/danverav/exercise-tracker/internal/db"
	"github.com/danverav/exercise-tracker/internal/services"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, location *time.Location) *Handler {
	if location == nil {
		location = time.UTC
	}
	repositories := db.NewRepositories(database)
	return &Handler{
		repositories:    repositories,
		userService:     services.NewUserService(repositories.Users),
		exerciseService: services.NewExerciseService(repositories.Exercises, repositories.Users, location),
		location:        location,
	}
}
