package utils

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseAmount extracts the numeric value from a currency string such as
// "AED 45,000". Upstream data is not always well formed, so failures
// return the supplied fallback instead of an error: these values feed
// arithmetic and must never abort a session.
func ParseAmount(s string, fallback float64) float64 {
	digits := strings.Builder{}
	for _, r := range s {
		if unicode.IsDigit(r) || r == '.' {
			digits.WriteRune(r)
		} else if digits.Len() > 0 && r != ',' {
			break
		}
	}
	if digits.Len() == 0 {
		return fallback
	}
	v, err := strconv.ParseFloat(digits.String(), 64)
	if err != nil {
		return fallback
	}
	return v
}

// ParseMinutes converts a duration string to minutes. Accepts forms
// like "75 minutes", "4 hours", "2-3 hours" (first number wins) and
// "Immediate" (zero). Unparseable input returns the fallback.
func ParseMinutes(s string, fallback float64) float64 {
	lower := strings.ToLower(strings.TrimSpace(s))
	if lower == "" {
		return fallback
	}
	if lower == "immediate" {
		return 0
	}
	digits := strings.Builder{}
	for _, r := range lower {
		if unicode.IsDigit(r) || r == '.' {
			digits.WriteRune(r)
		} else if digits.Len() > 0 {
			break
		}
	}
	if digits.Len() == 0 {
		return fallback
	}
	v, err := strconv.ParseFloat(digits.String(), 64)
	if err != nil {
		return fallback
	}
	if strings.Contains(lower, "hour") || strings.Contains(lower, "hr") {
		return v * 60
	}
	return v
}

// FormatAED renders an amount the way ops displays money: "AED 45,000".
func FormatAED(v float64) string {
	return "AED " + GroupDigits(int64(v + 0.5))
}

// GroupDigits inserts thousands separators.
func GroupDigits(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	if len(s) > 3 {
		var parts []string
		for len(s) > 3 {
			parts = append([]string{s[len(s)-3:]}, parts...)
			s = s[:len(s)-3]
		}
		s = s + "," + strings.Join(parts, ",")
	}
	if neg {
		return "-" + s
	}
	return s
}

// FormatMinutes renders a duration in minutes or one-decimal hours.
func FormatMinutes(min float64) string {
	if min < 60 {
		return fmt.Sprintf("%d minutes", int(min+0.5))
	}
	return fmt.Sprintf("%.1f hours", min/60)
}
