package model

import (
	"regexp"
	"strconv"
	"time"
)

// DateLayout is the DD/MM/YYYY layout used by the password table.
const DateLayout = "02/01/2006"

// Inclusive year bounds accepted by IsValidDate.
const (
	MinYear = 1900
	MaxYear = 2100
)

var datePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// FormatDate encodes t's calendar day (in t's location) as DD/MM/YYYY.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// IsValidDate reports whether s is a DD/MM/YYYY string naming a real calendar
// day between MinYear and MaxYear. Values such as 31/02/2024 are rejected.
func IsValidDate(s string) bool {
	_, ok := splitDate(s)
	return ok
}

// ParseDate decodes a DD/MM/YYYY string into midnight UTC of that day.
func ParseDate(s string) (time.Time, bool) {
	return splitDate(s)
}

func splitDate(s string) (time.Time, bool) {
	if !datePattern.MatchString(s) {
		return time.Time{}, false
	}

	day, _ := strconv.Atoi(s[0:2])
	month, _ := strconv.Atoi(s[3:5])
	year, _ := strconv.Atoi(s[6:10])

	if year < MinYear || year > MaxYear {
		return time.Time{}, false
	}

	// time.Date normalises overflow (31/02 -> 02/03); a real date survives the round trip.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return time.Time{}, false
	}

	return t, true
}
