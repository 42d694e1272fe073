package util

import "unicode/utf8"

// TruncateString ensures the returned string is at most maxLen runes,
// truncating and adding a ".." suffix if necessary.
func TruncateString(str string, maxLen int) string {
	if maxLen < 3 || utf8.RuneCountInString(str) <= maxLen {
		return str
	}
	runes := []rune(str)
	return string(runes[:maxLen-2]) + ".."
}
