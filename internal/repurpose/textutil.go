package repurpose

import "strings"

// truncateRunes cuts s to at most n runes. Limits in this package count code
// points, not bytes, so multi-byte text is never split mid-rune.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func runeCount(s string) int {
	return len([]rune(s))
}

// summarize returns a short prompt-friendly slice of the source text.
func summarize(text string, maxRunes int) string {
	return truncateRunes(strings.TrimSpace(text), maxRunes)
}
