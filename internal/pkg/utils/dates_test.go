package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlexibleDate(t *testing.T) {
	expected := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name  string
		input string
	}{
		{name: "two digit year with slashes", input: "1/15/24"},
		{name: "four digit year with slashes", input: "01/15/2024"},
		{name: "compact eight digits", input: "01152024"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := ParseFlexibleDate(tc.input)
			assert.NoError(t, err)
			assert.Equal(t, expected, parsed)
		})
	}
}

func TestParseFlexibleDateInvalid(t *testing.T) {
	invalidInputs := []string{"not-a-date", "", "13/45/2024", "2024-01-15"}
	for _, input := range invalidInputs {
		_, err := ParseFlexibleDate(input)
		assert.Error(t, err, "input %q should not parse", input)
	}
}

func TestParseStrictDate(t *testing.T) {
	parsed, err := ParseStrictDate("01/15/1980")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(1980, time.January, 15, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseStrictDate("1/15/80")
	assert.Error(t, err)
}

func TestFormatDate(t *testing.T) {
	date := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "02/01/2024", FormatDate(date))
	assert.Equal(t, "02/01/24", FormatDateShort(date))
}
