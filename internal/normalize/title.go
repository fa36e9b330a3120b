package normalize

import (
	"strings"
	"unicode"
)

// TitleCase upper-cases the first letter of every word and lower-cases the
// rest. Words break on whitespace and punctuation, except apostrophes, which
// stay inside a word: "MCDONALD'S" -> "Mcdonald's", "A&W" -> "A&W",
// "NETFLIX.COM" -> "Netflix.Com".
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inWord := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			if inWord {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			inWord = true
		case unicode.IsDigit(r) || unicode.IsMark(r) || isJoiner(r):
			b.WriteRune(r)
			inWord = true
		default:
			b.WriteRune(r)
			inWord = false
		}
	}
	return b.String()
}

func isJoiner(r rune) bool {
	return r == '\'' || r == '’'
}
