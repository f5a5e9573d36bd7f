package user

import (
	"regexp"
	"strings"
)

const countryCode = "+91"

// maximum identifier length: "+91" plus ten digits.
const maxMobileLen = 13

var mobilePattern = regexp.MustCompile(`^\+91\d{10}$`)

// NormalizeMobile enforces the fixed country-code prefix, strips any
// duplicate prefix the user typed, and caps the total length at 13.
func NormalizeMobile(in string) string {
	v := countryCode + strings.ReplaceAll(strings.TrimSpace(in), countryCode, "")
	if len(v) > maxMobileLen {
		v = v[:maxMobileLen]
	}
	return v
}

// ValidMobile reports whether the value is +91 followed by exactly ten digits.
func ValidMobile(v string) bool {
	return mobilePattern.MatchString(v)
}
