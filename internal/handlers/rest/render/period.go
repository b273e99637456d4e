package render

import (
	"net/http"
	"strconv"
	"time"

	"fulfillment/internal/entities"
)

const (
	dateLayout  = "2006-01-02"
	defaultDays = 30
	maxDays     = 366
)

type LastDaysFunc func(n int) (time.Time, time.Time)

// Period разбирает окно отчёта из query: start/end (даты UTC, end включительно)
// либо days (последние N дней, по умолчанию 30).
func Period(r *http.Request, lastDays LastDaysFunc) (time.Time, time.Time, error) {
	query := r.URL.Query()
	startStr, endStr := query.Get("start"), query.Get("end")

	if startStr == "" && endStr == "" {
		days := defaultDays
		if daysStr := query.Get("days"); daysStr != "" {
			parsed, err := strconv.Atoi(daysStr)
			if err != nil || parsed < 1 || parsed > maxDays {
				return time.Time{}, time.Time{}, entities.NewValidationError("days", "must be within [1, 366]")
			}
			days = parsed
		}
		start, end := lastDays(days)
		return start, end, nil
	}

	if startStr == "" || endStr == "" {
		return time.Time{}, time.Time{}, entities.NewValidationError("start", "start and end must be set together")
	}

	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, entities.NewValidationError("start", "must be YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, entities.NewValidationError("end", "must be YYYY-MM-DD")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, entities.NewValidationError("end", "must not be before start")
	}

	return start, end.AddDate(0, 0, 1), nil
}

func Limit(r *http.Request, fallback int) (int, error) {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		return fallback, nil
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		return 0, entities.NewValidationError("limit", "must be an integer")
	}
	return limit, nil
}
