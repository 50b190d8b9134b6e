package db

import (
	"github.com/danverav/exercise-tracker/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

// Create persists a new user, assigning a fresh id when the caller left
// it empty.
func (repo *UserRepository) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	return repo.database.Create(user).Error
}

func (repo *UserRepository) FindByID(userID string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("id = ?", userID).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByUsername(username string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("username = ?", username).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) ListAll() ([]models.User, error) {
	users := make([]models.User, 0)
	if err := repo.database.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
