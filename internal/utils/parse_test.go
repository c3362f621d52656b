package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	assert.Equal(t, 45000.0, ParseAmount("AED 45,000", 0))
	assert.Equal(t, 520000.0, ParseAmount("AED 520,000", 0))
	assert.Equal(t, 1200.5, ParseAmount("1,200.5", 0))
	assert.Equal(t, 50000.0, ParseAmount("TBD", 50000))
	assert.Equal(t, 50000.0, ParseAmount("", 50000))
}

func TestParseMinutes(t *testing.T) {
	assert.Equal(t, 75.0, ParseMinutes("75 minutes", 0))
	assert.Equal(t, 240.0, ParseMinutes("4 hours", 0))
	assert.Equal(t, 240.0, ParseMinutes("4-6 hours", 0))
	assert.Equal(t, 150.0, ParseMinutes("2.5 hrs", 0))
	assert.Equal(t, 0.0, ParseMinutes("Immediate", 120))
	assert.Equal(t, 120.0, ParseMinutes("unknown", 120))
	assert.Equal(t, 120.0, ParseMinutes("", 120))
}

func TestFormatAED(t *testing.T) {
	assert.Equal(t, "AED 45,000", FormatAED(45000))
	assert.Equal(t, "AED 1,234,567", FormatAED(1234567))
	assert.Equal(t, "AED 500", FormatAED(500))
	assert.Equal(t, "AED 25,000", FormatAED(24999.6))
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "45 minutes", FormatMinutes(45))
	assert.Equal(t, "1.5 hours", FormatMinutes(90))
	assert.Equal(t, "4.0 hours", FormatMinutes(240))
	assert.Equal(t, "0 minutes", FormatMinutes(0))
}

func TestHashDeterministic(t *testing.T) {
	a := HashStringToUint64("AIRCRAFT_SWAP_A320_001")
	b := HashStringToUint64("AIRCRAFT_SWAP_A320_001")
	c := HashStringToUint64("DELAY_4H_OVERNIGHT")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
