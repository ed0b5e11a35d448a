// utils/currency.go
package utils

import (
	"fmt"
	"strings"
)

// FormatBirr renders an amount with two decimals, thousands grouping and a
// localized currency suffix, e.g. "3,500.00 Birr" / "3,500.00 ብር".
func FormatBirr(amount float64, language string) string {
	suffix := "Birr"
	if language == languageAmharic {
		suffix = "ብር"
	}
	return fmt.Sprintf("%s %s", groupDigits(fmt.Sprintf("%.2f", amount)), suffix)
}

// groupDigits inserts comma separators into the integer part of a fixed
// decimal string.
func groupDigits(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}

	out := b.String()
	if fracPart != "" {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}
