package truncate

import (
	"unicode/utf8"
)

// Prefix returns the first n characters of text.
// Characters are runes, so multi-byte sequences are never split.
// No marker is appended.
func Prefix(text string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= n {
		return text
	}

	count := 0
	for i := range text {
		if count == n {
			return text[:i]
		}
		count++
	}
	return text
}

// ToLength truncates text to a maximum character length, ending with "..."
// when something was cut. Properly handles UTF-8 by counting runes, not bytes.
func ToLength(text string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}

	if maxLen < 3 {
		return Prefix(text, maxLen)
	}

	return Prefix(text, maxLen-3) + "..."
}
