// internal/forms/mask.go
package forms

import "strings"

// Masks are pure string-to-string transforms applied to raw input before it is
// stored. They tolerate any junk the user pastes in: everything but digits is
// stripped first, and partial input never ends in dangling punctuation.

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCPF renders up to 11 digits as 123.456.789-01.
func FormatCPF(value string) string {
	nums := digits(value)
	if len(nums) > 11 {
		nums = nums[:11]
	}

	var b strings.Builder
	for i, r := range nums {
		switch i {
		case 3, 6:
			b.WriteByte('.')
		case 9:
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatPhone renders up to 11 digits as (DD)D DDDD-DDDD, built progressively
// as digits accumulate.
func FormatPhone(value string) string {
	nums := digits(value)
	if len(nums) == 0 {
		return ""
	}
	if len(nums) > 11 {
		nums = nums[:11]
	}

	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(slice(nums, 0, 2))
	if len(nums) > 2 {
		b.WriteByte(')')
		b.WriteString(slice(nums, 2, 3))
	}
	if len(nums) > 3 {
		b.WriteByte(' ')
		b.WriteString(slice(nums, 3, 7))
	}
	if len(nums) > 7 {
		b.WriteByte('-')
		b.WriteString(slice(nums, 7, 11))
	}
	return b.String()
}

// FormatCEP renders up to 8 digits as 01310-930.
func FormatCEP(value string) string {
	nums := digits(value)
	if len(nums) > 8 {
		nums = nums[:8]
	}
	if len(nums) <= 5 {
		return nums
	}
	return nums[:5] + "-" + nums[5:]
}

// DateToDisplay converts a stored YYYY-MM-DD date (any trailing time part is
// ignored) to DD/MM/YYYY. Malformed input yields "".
func DateToDisplay(stored string) string {
	if len(stored) > 10 {
		stored = stored[:10]
	}
	parts := strings.Split(stored, "-")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return ""
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// DateToStored converts a DD/MM/YYYY display date to the YYYY-MM-DD shape the
// remote store expects. Malformed input yields "".
func DateToStored(display string) string {
	parts := strings.Split(display, "/")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return ""
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

func slice(s string, from, to int) string {
	if to > len(s) {
		to = len(s)
	}
	if from >= to {
		return ""
	}
	return s[from:to]
}
