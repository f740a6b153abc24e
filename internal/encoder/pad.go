package encoder

import "strings"

// padRight space-pads s on the right to width, truncating longer values.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padZero zero-pads s on the left to width, keeping the rightmost digits
// of longer values.
func padZero(s string, width int) string {
	if len(s) >= width {
		return s[len(s)-width:]
	}
	return strings.Repeat("0", width-len(s)) + s
}

func spaces(n int) string {
	return strings.Repeat(" ", n)
}

func zeros(n int) string {
	return strings.Repeat("0", n)
}
