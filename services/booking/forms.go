package booking

import "strings"

// TimeSlots are the fixed labels offered on the schedule step.
var TimeSlots = []string{
	"09:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"01:00 PM", "02:00 PM", "03:00 PM", "04:00 PM",
	"05:00 PM", "06:00 PM", "07:00 PM", "08:00 PM",
}

// digitsOnly strips everything but ASCII digits and truncates to max runes.
func digitsOnly(s string, max int) string {
	var b strings.Builder
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
		if b.Len() == max {
			break
		}
	}
	return b.String()
}

// FormatPincode keeps at most six digits.
func FormatPincode(in string) string {
	return digitsOnly(in, 6)
}

// FormatCardNumber keeps at most sixteen digits and groups them by four.
func FormatCardNumber(in string) string {
	digits := digitsOnly(in, 16)
	var groups []string
	for len(digits) > 4 {
		groups = append(groups, digits[:4])
		digits = digits[4:]
	}
	if digits != "" {
		groups = append(groups, digits)
	}
	return strings.Join(groups, " ")
}

// FormatCardExpiry keeps at most four digits and inserts "/" after the month
// once a third digit is typed.
func FormatCardExpiry(in string) string {
	digits := digitsOnly(in, 4)
	if len(digits) > 2 {
		return digits[:2] + "/" + digits[2:]
	}
	return digits
}

// FormatCardCVV keeps at most four digits.
func FormatCardCVV(in string) string {
	return digitsOnly(in, 4)
}

// FormatOTPInput keeps at most six digits.
func FormatOTPInput(in string) string {
	return digitsOnly(in, 6)
}
