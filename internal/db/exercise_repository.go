package db

import (
	"time"

	"github.com/danverav/exercise-tracker/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExerciseRepository struct {
	database *gorm.DB
}

func NewExerciseRepository(database *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{database: database}
}

func (repo *ExerciseRepository) Create(entry *models.Exercise) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	return repo.database.Create(entry).Error
}

// ListByUserFiltered returns the user's entries ordered by date. Bounds are
// optional; fromStart is inclusive and toEnd exclusive. A positive limit
// caps the result after ordering.
func (repo *ExerciseRepository) ListByUserFiltered(userID string, fromStart *time.Time, toEnd *time.Time, limit int) ([]models.Exercise, error) {
	query := repo.database.Model(&models.Exercise{}).Where("user_id = ?", userID)
	if fromStart != nil {
		query = query.Where("date >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("date < ?", *toEnd)
	}
	query = query.Order("date ASC, id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	entries := make([]models.Exercise, 0)
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *ExerciseRepository) CountByUser(userID string) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Exercise{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
