package utils

import (
	"math"
	"strconv"
)

// ParseAmount parses a currency value and rounds it to 2 decimal places.
func ParseAmount(amountString string) (float64, error) {
	value, err := strconv.ParseFloat(amountString, 64)
	if err != nil {
		return 0, err
	}
	return RoundAmount(value), nil
}

func RoundAmount(value float64) float64 {
	return math.Round(value*100) / 100
}

func FormatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
