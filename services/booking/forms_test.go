package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCardNumber(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"full number with trailing junk", "1234567890123456extra", "1234 5678 9012 3456"},
		{"digits beyond sixteen discarded", "12345678901234567890", "1234 5678 9012 3456"},
		{"partial group left ungrouped", "12345", "1234 5"},
		{"short input unchanged", "123", "123"},
		{"mixed separators stripped", "1234-5678 9012.3456", "1234 5678 9012 3456"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatCardNumber(tc.in))
		})
	}
}

func TestFormatCardExpiry(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"four digits get separator", "1225", "12/25"},
		{"single digit has no separator", "1", "1"},
		{"two digits have no separator", "12", "12"},
		{"three digits get separator", "122", "12/2"},
		{"extra digits truncated", "122534", "12/25"},
		{"non-digits stripped first", "12/25", "12/25"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatCardExpiry(tc.in))
		})
	}
}

func TestFormatCardCVV(t *testing.T) {
	assert.Equal(t, "123", FormatCardCVV("123"))
	assert.Equal(t, "1234", FormatCardCVV("12345"))
	assert.Equal(t, "123", FormatCardCVV("1a2b3c"))
}

func TestFormatPincode(t *testing.T) {
	assert.Equal(t, "400001", FormatPincode("400001"))
	assert.Equal(t, "400001", FormatPincode("400-001-99"))
	assert.Equal(t, "40", FormatPincode("4 0"))
}

func TestFormatOTPInput(t *testing.T) {
	assert.Equal(t, "123456", FormatOTPInput("12-34-56"))
	assert.Equal(t, "123456", FormatOTPInput("1234567"))
	assert.Equal(t, "", FormatOTPInput("abc"))
}
