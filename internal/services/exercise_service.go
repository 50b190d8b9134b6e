package services

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/danverav/exercise-tracker/internal/models"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrDescriptionRequired = errors.New("description is required")
	ErrInvalidDuration     = errors.New("invalid duration")
	ErrInvalidDate         = errors.New("invalid date")
)

type ExerciseEntryRepository interface {
	Create(entry *models.Exercise) error
	ListByUserFiltered(userID string, fromStart *time.Time, toEnd *time.Time, limit int) ([]models.Exercise, error)
}

type ExerciseUserRepository interface {
	FindByID(userID string) (models.User, error)
}

// ExerciseInput carries the raw request fields. Duration stays a string
// until coercion because clients send it both as a JSON number and as
// form-encoded text.
type ExerciseInput struct {
	Description string
	Duration    string
	Date        string
}

type ExerciseResult struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Date        string `json:"date"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
}

type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type ExerciseLog struct {
	ID       string     `json:"id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Log      []LogEntry `json:"log"`
}

type ExerciseService struct {
	exercises ExerciseEntryRepository
	users     ExerciseUserRepository
	location  *time.Location
	now       func() time.Time
}

func NewExerciseService(exercises ExerciseEntryRepository, users ExerciseUserRepository, location *time.Location) *ExerciseService {
	return &ExerciseService{
		exercises: exercises,
		users:     users,
		location:  location,
		now:       time.Now,
	}
}

// AddExercise persists one entry for an existing user. The date defaults
// to the current server time when absent; nothing is written when any
// validation fails.
func (service *ExerciseService) AddExercise(userID string, input ExerciseInput) (ExerciseResult, error) {
	user, err := service.users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ExerciseResult{}, ErrUserNotFound
	}
	if err != nil {
		return ExerciseResult{}, err
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		return ExerciseResult{}, ErrDescriptionRequired
	}

	duration, err := coerceDuration(input.Duration)
	if err != nil {
		return ExerciseResult{}, err
	}

	date := service.now().In(service.location)
	if value := strings.TrimSpace(input.Date); value != "" {
		parsed, err := time.ParseInLocation("2006-01-02", value, service.location)
		if err != nil {
			return ExerciseResult{}, ErrInvalidDate
		}
		date = parsed
	}

	entry := models.Exercise{
		UserID:      user.ID,
		Description: description,
		Duration:    duration,
		Date:        date,
	}
	if err := service.exercises.Create(&entry); err != nil {
		return ExerciseResult{}, err
	}

	return ExerciseResult{
		ID:          user.ID,
		Username:    user.Username,
		Date:        FormatEntryDate(entry.Date),
		Duration:    entry.Duration,
		Description: entry.Description,
	}, nil
}

// GetLog assembles the user's filtered exercise log. Count reflects the
// returned list after filtering and capping; an empty log is not an error.
func (service *ExerciseService) GetLog(userID string, query LogQuery) (ExerciseLog, error) {
	user, err := service.users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ExerciseLog{}, ErrUserNotFound
	}
	if err != nil {
		return ExerciseLog{}, err
	}

	entries, err := service.exercises.ListByUserFiltered(user.ID, query.From, query.To, query.Limit)
	if err != nil {
		return ExerciseLog{}, err
	}

	logEntries := make([]LogEntry, 0, len(entries))
	for _, entry := range entries {
		logEntries = append(logEntries, LogEntry{
			Description: entry.Description,
			Duration:    entry.Duration,
			Date:        FormatEntryDate(entry.Date),
		})
	}

	return ExerciseLog{
		ID:       user.ID,
		Username: user.Username,
		Count:    len(logEntries),
		Log:      logEntries,
	}, nil
}

func coerceDuration(raw string) (int, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, ErrInvalidDuration
	}
	duration, err := strconv.Atoi(value)
	if err != nil || duration <= 0 {
		return 0, ErrInvalidDuration
	}
	return duration, nil
}
