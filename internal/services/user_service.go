package services

import (
	"errors"
	"strings"

	"github.com/danverav/exercise-tracker/internal/models"
)

var (
	ErrUsernameRequired = errors.New("username is required")
	ErrUsernameTaken    = errors.New("username already taken")
)

type UserAccountRepository interface {
	Create(user *models.User) error
	ExistsByUsername(username string) (bool, error)
	ListAll() ([]models.User, error)
}

type UserService struct {
	users UserAccountRepository
}

func NewUserService(users UserAccountRepository) *UserService {
	return &UserService{users: users}
}

func (service *UserService) CreateUser(username string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.User{}, ErrUsernameRequired
	}

	taken, err := service.users.ExistsByUsername(username)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, ErrUsernameTaken
	}

	user := models.User{Username: username}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (service *UserService) ListUsers() ([]models.User, error) {
	return service.users.ListAll()
}
