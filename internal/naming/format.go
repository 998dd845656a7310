package naming

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// collapseSpaces trims s and collapses internal whitespace runs to single
// spaces.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// CapitalizeTitle capitalizes every whitespace-separated word independently:
// first letter upper, remainder lower. The transform is destructive, so
// tokens with embedded uppercase ("XIII", "McFarlane") are not preserved.
// Example: "batman - dark victory" -> "Batman - Dark Victory".
func CapitalizeTitle(title string) string {
	words := strings.Fields(title)
	for i, w := range words {
		words[i] = capitalizeWord(w)
	}
	return strings.Join(words, " ")
}

func capitalizeWord(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if size == 0 {
		return w
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
}

// FormatIssue renders an issue number as a canonical token: zero-padded to
// three digits for numbers up to 999 ("#007"), unpadded above ("#1000").
func FormatIssue(issue int) string {
	if issue <= 999 {
		return fmt.Sprintf("#%03d", issue)
	}
	return fmt.Sprintf("#%d", issue)
}
