package services

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidFrequency = errors.New("invalid frequency")

const (
	FrequencyWeekly   = "weekly"
	FrequencyBiWeekly = "bi-weekly"
	FrequencyMonthly  = "monthly"
)

// frequencyIntervalDays maps a cadence to its fixed day stride. Monthly is a
// 30-day approximation, not calendar-month arithmetic.
func frequencyIntervalDays(frequency string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(frequency)) {
	case FrequencyWeekly:
		return 7, nil
	case FrequencyBiWeekly, "biweekly", "bi_weekly":
		return 14, nil
	case FrequencyMonthly:
		return 30, nil
	default:
		return 0, ErrInvalidFrequency
	}
}

// ExpandSessionDates turns a program timeline into the ordered list of
// session dates: startDate, then every intervalDays, while the date is on or
// before endDate. startDate after endDate yields an empty list.
func ExpandSessionDates(startDate, endDate time.Time, frequency string) ([]time.Time, error) {
	interval, err := frequencyIntervalDays(frequency)
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0)
	for current := startDate; !current.After(endDate); current = current.AddDate(0, 0, interval) {
		dates = append(dates, current)
	}
	return dates, nil
}
