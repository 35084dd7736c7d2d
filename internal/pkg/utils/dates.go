package utils

import (
	"errors"
	"time"
)

// Ordered list of accepted input layouts. Order matters only for ambiguous
// two-digit-year strings; the first successful parse wins.
var flexibleDateLayouts = []string{
	"01/02/06",
	"01/02/2006",
	"01022006",
}

const (
	dateLayout      = "01/02/2006"
	dateLayoutShort = "01/02/06"
)

var errNoValidDateFormat = errors.New("no valid date format found")

// ParseFlexibleDate parses free-text dates in MM/DD/YY, MM/DD/YYYY or MMDDYYYY
// form, normalized to a UTC calendar date with no time component.
func ParseFlexibleDate(dateString string) (time.Time, error) {
	for _, layout := range flexibleDateLayouts {
		parsed, err := time.Parse(layout, dateString)
		if err == nil {
			return truncateToDate(parsed), nil
		}
	}
	return time.Time{}, errNoValidDateFormat
}

// ParseStrictDate accepts MM/DD/YYYY only. Used for dates of birth.
func ParseStrictDate(dateString string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, dateString)
	if err != nil {
		return time.Time{}, err
	}
	return truncateToDate(parsed), nil
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func FormatDateShort(t time.Time) string {
	return t.Format(dateLayoutShort)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
