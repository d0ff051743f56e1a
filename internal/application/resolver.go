package application

import (
	"slices"

	"github.com/ericfisherdev/guestwifi/internal/domain/model"
)

// FindPasswordForDate returns the password recorded for targetDate. When the
// table lists a date more than once the last row wins. Invalid target dates
// never match. records is not modified.
func FindPasswordForDate(records []model.PasswordRecord, targetDate string) (string, bool) {
	if !model.IsValidDate(targetDate) {
		return "", false
	}

	for i := len(records) - 1; i >= 0; i-- {
		if records[i].Date == targetDate {
			return records[i].Password, true
		}
	}

	return "", false
}

// HasPasswordForDate reports whether targetDate resolves to a password.
func HasPasswordForDate(records []model.PasswordRecord, targetDate string) bool {
	_, ok := FindPasswordForDate(records, targetDate)
	return ok
}

// AvailableDates returns the distinct valid dates in records, oldest first.
func AvailableDates(records []model.PasswordRecord) []string {
	seen := make(map[string]struct{}, len(records))
	dates := make([]string, 0, len(records))

	for _, r := range records {
		if !model.IsValidDate(r.Date) {
			continue
		}
		if _, dup := seen[r.Date]; dup {
			continue
		}
		seen[r.Date] = struct{}{}
		dates = append(dates, r.Date)
	}

	slices.SortFunc(dates, func(a, b string) int {
		ta, _ := model.ParseDate(a)
		tb, _ := model.ParseDate(b)
		return ta.Compare(tb)
	})

	return dates
}
