package services

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidFromDate = errors.New("invalid from date")
	ErrInvalidToDate   = errors.New("invalid to date")
	ErrInvalidLimit    = errors.New("invalid limit")
)

// LogQuery narrows a user's exercise log. From is inclusive, To exclusive
// (already advanced past the requested day), Limit zero means uncapped.
type LogQuery struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

// ParseLogQuery translates the raw from/to/limit request parameters into a
// store filter. Dates are calendar days ("2006-01-02") and both ends of the
// range include the whole day. A malformed value is an error, never a
// silently ignored filter.
func ParseLogQuery(fromRaw string, toRaw string, limitRaw string, location *time.Location) (LogQuery, error) {
	query := LogQuery{}

	if value := strings.TrimSpace(fromRaw); value != "" {
		parsed, err := time.ParseInLocation("2006-01-02", value, location)
		if err != nil {
			return LogQuery{}, ErrInvalidFromDate
		}
		start := DateAtLocation(parsed, location)
		query.From = &start
	}

	if value := strings.TrimSpace(toRaw); value != "" {
		parsed, err := time.ParseInLocation("2006-01-02", value, location)
		if err != nil {
			return LogQuery{}, ErrInvalidToDate
		}
		end := DateAtLocation(parsed, location).AddDate(0, 0, 1)
		query.To = &end
	}

	if value := strings.TrimSpace(limitRaw); value != "" {
		limit, err := strconv.Atoi(value)
		if err != nil || limit <= 0 {
			return LogQuery{}, ErrInvalidLimit
		}
		query.Limit = limit
	}

	return query, nil
}
