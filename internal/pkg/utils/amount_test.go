package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	value, err := ParseAmount("125.456")
	assert.NoError(t, err)
	assert.Equal(t, 125.46, value)

	value, err = ParseAmount("100")
	assert.NoError(t, err)
	assert.Equal(t, 100.0, value)

	_, err = ParseAmount("12.3.4")
	assert.Error(t, err)

	_, err = ParseAmount("abc")
	assert.Error(t, err)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "125.46", FormatAmount(125.46))
	assert.Equal(t, "0.00", FormatAmount(0))
	assert.Equal(t, "100.00", FormatAmount(100))
}
